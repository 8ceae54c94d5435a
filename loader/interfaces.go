package loader

import (
	"io"

	"github.com/panyam/forest/decl" // Loader needs to know about the AST structure
)

// Parser defines the interface for parsing forest programs.
type Parser interface {
	// Parse reads from the input reader and returns the root AST node.
	// sourceName is used for context in error messages (e.g., file path).
	Parse(input io.Reader, sourceName string) (*decl.Program, error)
}

// FileResolver turns a path given on the command line into readable
// content.
type FileResolver interface {
	// Resolve should return:
	// 1. An io.ReadCloser for the content of the resolved file.
	// 2. The canonical path of the resolved file, used for caching.
	// 3. An error if resolution or reading fails.
	Resolve(path string) (content io.ReadCloser, canonicalPath string, err error)
}
