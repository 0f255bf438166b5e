package syconf

import (
	"fmt"
	"os"
)

// Source is an immutable text buffer together with the path it was read
// from. It is shared by reference among every AST and code node parsed from
// it, so diagnostics can report a location without copying the text.
type Source struct {
	// Origin is the file path the text was read from, or a synthetic tag
	// (e.g. "<string>") for in-memory sources. Synthetic sources have no
	// directory, so a relative `import` from them is an error (see
	// resolveImport).
	Origin string
	Text   string
	// dir is the directory `import` resolves relative paths against. Empty
	// for synthetic sources.
	dir string
}

// NewStringSource wraps an in-memory string. Sources built this way cannot
// resolve relative imports; absolute import paths still work.
func NewStringSource(text string) *Source {
	return &Source{Origin: "<string>", Text: text}
}

// NewFileSource wraps the contents of a file already read from disk.
func NewFileSource(path, text string) *Source {
	return &Source{Origin: path, Text: text, dir: dirOf(path)}
}

// Location identifies a byte offset inside a Source, computed as
// len(source.Text) - restLen, where restLen is the number of source bytes
// remaining when the owning expression began (see ast.go's RestLen field).
type Location struct {
	Source *Source
	Offset int
}

// readSourceFile reads path's contents for ParseFile, reporting failure as
// a DomainError rather than a bare os.PathError so every failure mode this
// package exposes shares one Error type.
func readSourceFile(path string) (string, *Error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", newError(DomainError, Location{}, "reading %q: %v", path, err)
	}
	return string(data), nil
}

func (l Location) String() string {
	if l.Source == nil {
		return "<unknown>"
	}
	line, col := l.lineCol()
	return fmt.Sprintf("%s:%d:%d", l.Source.Origin, line, col)
}

func (l Location) lineCol() (line, col int) {
	line, col = 1, 1
	for i := 0; i < l.Offset && i < len(l.Source.Text); i++ {
		if l.Source.Text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return
}

// locationAt builds a Location for a node whose expression began restLen
// bytes before the end of src.
func locationAt(src *Source, restLen int) Location {
	return Location{Source: src, Offset: len(src.Text) - restLen}
}
