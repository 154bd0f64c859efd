package source

import "fmt"

const (
	// DefaultFilename is used when a location is computed for an anonymous buffer.
	DefaultFilename = "<eval>"
	// DefaultFunctionName is used when no enclosing function is known.
	DefaultFunctionName = "<anonymous>"
)

// SourceLoc is a human-facing position: file, enclosing function, line and column.
// It is derived on demand and never stored on tokens.
type SourceLoc struct {
	Filename     string
	FunctionName string
	Line         uint32 // 1-based
	Column       uint32 // 1-based
}

func (l SourceLoc) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Locate scans content from the beginning up to off and counts lines and columns.
// Offsets past the end are clamped to len(content).
func Locate(content []byte, off uint32) SourceLoc {
	loc := SourceLoc{
		Filename:     DefaultFilename,
		FunctionName: DefaultFunctionName,
		Line:         1,
		Column:       1,
	}
	limit := min(int(off), len(content))
	for i := range limit {
		if content[i] == '\n' {
			loc.Line++
			loc.Column = 1
			continue
		}
		loc.Column++
	}
	return loc
}

// Locate is the per-file variant of the package-level Locate with the filename filled in.
func (f *File) Locate(off uint32) SourceLoc {
	loc := Locate(f.Content, off)
	if f.Path != "" {
		loc.Filename = f.Path
	}
	return loc
}
