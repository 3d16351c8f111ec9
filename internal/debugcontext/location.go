package debugcontext

import "fmt"

// Location identifies a position in source code. It is a value type — safe to
// copy and compare.
//
// Most locations are single points, lifted straight from the lexer: one
// token, one column. But the macro expander synthesizes tokens that have no
// single source column of their own — a pasted identifier "ABC" built from
// three "A ## B ## C" tokens, or a stringified literal built from a whole
// argument's rendered body. For those, width records how many columns the
// synthesized lexeme spans, starting at column, so a diagnostic about the
// result can underline what it actually produced instead of pointing at
// wherever the first component token happened to start.
type Location struct {
	filePath string // Absolute or relative path to the source file.
	line     int    // 1-based line number.
	column   int    // 1-based column number, or 0 for "entire line".
	width    int    // Span length in columns; 0 or 1 means a single point.
}

// Loc creates a point Location — the common case, used for every token the
// lexer emits directly from source text.
func Loc(filePath string, line, column int) Location {
	return Location{
		filePath: filePath,
		line:     line,
		column:   column,
	}
}

// Span creates a Location covering width columns starting at column. Use
// this for a token the expander builds out of more than one source token
// (token pasting, stringification) so diagnostics can point at the whole
// synthesized lexeme rather than a single column within it.
func Span(filePath string, line, column, width int) Location {
	return Location{
		filePath: filePath,
		line:     line,
		column:   column,
		width:    width,
	}
}

// FilePath returns the file path of the location.
func (l Location) FilePath() string { return l.filePath }

// Line returns the 1-based line number.
func (l Location) Line() int { return l.line }

// Column returns the 1-based column number, or 0 for "entire line".
func (l Location) Column() int { return l.column }

// Width returns the span's length in columns, or 0/1 for a single point.
func (l Location) Width() int { return l.width }

// String returns a human-readable representation of the location.
// Format: "filePath:line:column", "filePath:line:column-endColumn" when the
// location spans more than one column, or "filePath:line" if column is 0.
func (l Location) String() string {
	switch {
	case l.column == 0:
		return fmt.Sprintf("%s:%d", l.filePath, l.line)
	case l.width > 1:
		return fmt.Sprintf("%s:%d:%d-%d", l.filePath, l.line, l.column, l.column+l.width-1)
	default:
		return fmt.Sprintf("%s:%d:%d", l.filePath, l.line, l.column)
	}
}
