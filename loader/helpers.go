package loader

import (
	"fmt"
	"io"
)

// LoadFilesAndValidate loads and validates every file, printing a line per
// file and any problems found to w.  Returns false if any file failed.
func (l *Loader) LoadFilesAndValidate(w io.Writer, sourceFiles ...string) (success bool) {
	success = true
	for _, f := range sourceFiles {
		file, err := l.LoadFile(f)
		if err != nil {
			fmt.Fprintf(w, "Error loading file %s: %v\n", f, err)
			success = false
			continue
		}
		if !l.Validate(file) {
			success = false
			fmt.Fprintf(w, "Error validating file %s\n", file.FullPath)
			file.PrintErrors(w)
		} else {
			fmt.Fprintf(w, "File %s - validated successfully\n", file.FullPath)
		}
	}
	return
}
