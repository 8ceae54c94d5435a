package loader

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// StdinPath is the path that reads the program from standard input.
const StdinPath = "-"

// DefaultFileResolver resolves paths against a FileSystem, with "-"
// meaning standard input.
type DefaultFileResolver struct {
	FS    FileSystem
	Stdin io.Reader
}

// NewDefaultFileResolver creates a resolver over the local filesystem.
func NewDefaultFileResolver() *DefaultFileResolver {
	return &DefaultFileResolver{FS: NewLocalFS(""), Stdin: os.Stdin}
}

func (r *DefaultFileResolver) Resolve(path string) (io.ReadCloser, string, error) {
	if path == StdinPath {
		if r.Stdin == nil {
			return nil, "", fmt.Errorf("no standard input available")
		}
		return io.NopCloser(r.Stdin), "<stdin>", nil
	}

	canonicalPath, err := r.FS.Canonical(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not get absolute path for '%s': %w", path, err)
	}
	if !r.FS.Exists(canonicalPath) {
		return nil, "", fmt.Errorf("file not found: %s", path)
	}
	data, err := r.FS.ReadFile(canonicalPath)
	if err != nil {
		return nil, "", fmt.Errorf("could not read file '%s': %w", canonicalPath, err)
	}
	return io.NopCloser(bytes.NewReader(data)), canonicalPath, nil
}
