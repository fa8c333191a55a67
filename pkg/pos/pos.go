// Package pos defines the Location and Span primitives shared by the
// lexer, the AST and the diagnostic reporter.
package pos

import "fmt"

// Location is a single point in a source file. Line and Column are
// 1-based, Absolute is 0-based. The zero value is not a valid Location;
// use Eof for the sentinel "no position" value.
type Location struct {
	Line     int
	Column   int
	Absolute int
}

// Eof is the sentinel Location returned once the lexer's input is
// exhausted.
var Eof = Location{Line: -1, Column: -1, Absolute: -1}

// IsEof reports whether l is the end-of-file sentinel.
func (l Location) IsEof() bool {
	return l == Eof
}

func (l Location) String() string {
	if l.IsEof() {
		return "EOF"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Before reports whether l comes strictly before other.
func (l Location) Before(other Location) bool {
	return l.Absolute < other.Absolute
}

// Containment is the three-way result of comparing a Location against a
// Span: whether the point lies before, within, or at-or-after it.
type Containment int

const (
	// Less means the point lies before the span's start.
	Less Containment = iota
	// Equal means the point lies within [start, end).
	Equal
	// Greater means the point lies at or beyond the span's end.
	Greater
)

func (c Containment) String() string {
	switch c {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Containment(?)"
	}
}

// Span is a half-open source region [Start, End).
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a Span from two Locations.
func NewSpan(start, end Location) Span {
	return Span{Start: start, End: end}
}

// Containment returns where loc lies relative to s: Less if before
// s.Start, Equal if inside [s.Start, s.End), Greater if at or beyond
// s.End. This is the central primitive the location visitor uses to
// navigate a tree.
func (s Span) Containment(loc Location) Containment {
	if loc.Absolute < s.Start.Absolute {
		return Less
	}
	if loc.Absolute >= s.End.Absolute {
		return Greater
	}
	return Equal
}

func (s Span) String() string {
	return fmt.Sprintf("[%s, %s)", s.Start, s.End)
}
