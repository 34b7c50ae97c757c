package lexer

import "fmt"

type LineKind int

const (
	COMPUTE LineKind = iota // [dest=]comp[;jump]
	ADDRESS                 // @operand
	LABEL                   // (NAME)
)

// Line is one normalized code line: comment removed, surrounding
// whitespace trimmed, never empty.
type Line struct {
	Kind LineKind // classification by leading character
	Text string   // normalized text
	Pos  Position // position in source code
}

// NewLine creates a new Line instance
func NewLine(kind LineKind, text string, pos Position) Line {
	return Line{
		Kind: kind,
		Text: text,
		Pos:  pos,
	}
}

// String returns a string representation of the Line
func (l Line) String() string {
	return fmt.Sprintf("L_{%s, %q, %s}", l.Kind, l.Text, l.Pos)
}

// IsLabel reports whether the line declares a label
func (l Line) IsLabel() bool {
	return l.Kind == LABEL
}

// String returns a string representation of the LineKind
func (k LineKind) String() string {
	switch k {
	case COMPUTE:
		return "compute"
	case ADDRESS:
		return "address"
	case LABEL:
		return "label"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}
