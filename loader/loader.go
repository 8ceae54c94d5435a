package loader

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/panyam/forest/decl"
	"github.com/panyam/forest/parser"
	"golang.org/x/text/unicode/norm"
)

// LoadedFile is a parsed program together with where it came from.
type LoadedFile struct {
	ErrorCollector
	FullPath   string
	Program    *decl.Program
	LastLoaded time.Time
}

// ForestParser adapts parser.Parse to the Parser interface.
type ForestParser struct{}

func (pa *ForestParser) Parse(input io.Reader, sourceName string) (*decl.Program, error) {
	_, prog, err := parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("in '%s': %w", sourceName, err)
	}
	prog.Name = sourceName
	return prog, nil
}

// Loader reads and parses programs, caching them by canonical path.
type Loader struct {
	ErrorCollector
	parser   Parser
	resolver FileResolver

	mutex       sync.Mutex
	loadedFiles map[string]*LoadedFile
}

// NewLoader creates a loader.  Nil arguments fall back to the forest
// parser and the local filesystem.
func NewLoader(p Parser, resolver FileResolver) *Loader {
	if p == nil {
		p = &ForestParser{}
	}
	if resolver == nil {
		resolver = NewDefaultFileResolver()
	}
	return &Loader{
		parser:      p,
		resolver:    resolver,
		loadedFiles: make(map[string]*LoadedFile),
	}
}

// LoadFile resolves, reads and parses path.  Standard input is never
// cached; files are parsed once per loader.  Failures are also recorded
// on the loader's error collector.
func (l *Loader) LoadFile(path string) (*LoadedFile, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	contentReader, canonicalPath, err := l.resolver.Resolve(path)
	if err != nil {
		err = fmt.Errorf("cannot resolve '%s': %w", path, err)
		l.AddErrors(err)
		return nil, err
	}
	defer contentReader.Close()

	if path != StdinPath {
		if found, ok := l.loadedFiles[canonicalPath]; ok {
			return found, nil
		}
	}

	prog, err := l.LoadReader(canonicalPath, contentReader)
	if err != nil {
		return nil, err
	}
	out := &LoadedFile{FullPath: canonicalPath, Program: prog, LastLoaded: time.Now()}
	if path != StdinPath {
		l.loadedFiles[canonicalPath] = out
	}
	return out, nil
}

// LoadReader parses a program from r.  The source is normalized to NFC
// first so that names which render the same compare equal.
func (l *Loader) LoadReader(sourceName string, r io.Reader) (*decl.Program, error) {
	prog, err := l.parser.Parse(norm.NFC.Reader(r), sourceName)
	if err != nil {
		err = fmt.Errorf("parsing error: %w", err)
		l.AddErrors(err)
		return nil, err
	}
	return prog, nil
}

// Loaded returns the cached file for a canonical path, if any.
func (l *Loader) Loaded(canonicalPath string) (*LoadedFile, bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	f, ok := l.loadedFiles[canonicalPath]
	return f, ok
}
