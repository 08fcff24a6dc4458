package primitives

import (
	"cmp"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Direction is an enum representing the direction of a word in a grid, either 'Horizontal' or 'Vertical'.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

// Opposite returns the perpendicular direction.
func (d Direction) Opposite() Direction {
	if d == DirectionHorizontal {
		return DirectionVertical
	}
	return DirectionHorizontal
}

func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case DirectionHorizontal, DirectionVertical:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("unknown direction %d", int(d))
}

// UnmarshalText implements encoding.TextUnmarshaler. "right" and "down" are
// accepted as aliases.
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "horizontal", "right", "across":
		*d = DirectionHorizontal
	case "vertical", "down":
		*d = DirectionVertical
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Position is the grid cell holding the first letter of a word.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Word is a run of text placed on the grid.
//
// Inside a crossword a word is identified by its Value alone.
type Word struct {
	Position  Position  `json:"position" yaml:"position"`
	Direction Direction `json:"direction" yaml:"direction"`
	Value     string    `json:"value" yaml:"value"`
}

// Len returns the number of letters (runes) in the word.
func (w Word) Len() int {
	return utf8.RuneCountInString(w.Value)
}

// RuneAt returns the letter at the given index, or false if there is none.
func (w Word) RuneAt(index int) (rune, bool) {
	if index < 0 {
		return 0, false
	}
	i := 0
	for _, r := range w.Value {
		if i == index {
			return r, true
		}
		i++
	}
	return 0, false
}

// Translate returns the word moved by (dx, dy).
func (w Word) Translate(dx, dy int) Word {
	w.Position.X += dx
	w.Position.Y += dy
	return w
}

// BoundingBox returns the one cell thick rectangle occupied by the word.
func (w Word) BoundingBox() BoundingBox {
	if w.Direction == DirectionHorizontal {
		return BoundingBox{X: w.Position.X, Y: w.Position.Y, W: w.Len(), H: 1}
	}
	return BoundingBox{X: w.Position.X, Y: w.Position.Y, W: 1, H: w.Len()}
}

// Compare orders words by X, then Y, then direction, then value.
func (w Word) Compare(other Word) int {
	if c := cmp.Compare(w.Position.X, other.Position.X); c != 0 {
		return c
	}
	if c := cmp.Compare(w.Position.Y, other.Position.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(w.Direction, other.Direction); c != 0 {
		return c
	}
	return strings.Compare(w.Value, other.Value)
}

func (w Word) String() string {
	return fmt.Sprintf("%s(%d,%d)=%q", w.Direction, w.Position.X, w.Position.Y, w.Value)
}

// BoundingBox is the rectangle a word covers. It is always derived from a
// Word and never stored.
type BoundingBox struct {
	X, Y int
	W, H int
}

// SameOrientation reports whether both boxes run along the same axis. A single
// letter box matches either orientation.
func (b BoundingBox) SameOrientation(other BoundingBox) bool {
	return (b.W == 1 && other.W == 1) || (b.H == 1 && other.H == 1)
}

// Intersects reports whether the boxes share at least one cell. Boxes that
// only share an edge do not intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.overlapsX(other) && b.overlapsY(other)
}

func (b BoundingBox) overlapsX(other BoundingBox) bool {
	return b.X < other.X+other.W && b.X+b.W > other.X
}

func (b BoundingBox) overlapsY(other BoundingBox) bool {
	return b.Y < other.Y+other.H && b.Y+b.H > other.Y
}

// SideTouchesSide reports whether two parallel boxes lie in adjacent rows (or
// columns) with overlapping extent.
func (b BoundingBox) SideTouchesSide(other BoundingBox) bool {
	if !b.SameOrientation(other) {
		return false
	}
	if b.H == 1 {
		return absDiff(b.Y, other.Y) == 1 && b.overlapsX(other)
	}
	return absDiff(b.X, other.X) == 1 && b.overlapsY(other)
}

// HeadTouchesHead reports whether two parallel boxes sit on the same line with
// one ending exactly where the other starts.
func (b BoundingBox) HeadTouchesHead(other BoundingBox) bool {
	if !b.SameOrientation(other) {
		return false
	}
	if b.H == 1 {
		return b.Y == other.Y && (b.X+b.W == other.X || other.X+other.W == b.X)
	}
	return b.X == other.X && (b.Y+b.H == other.Y || other.Y+other.H == b.Y)
}

// SideTouchesHead reports whether the end of one box touches the flank of a
// perpendicular box without crossing it.
//
// Exactly one of the four edge conditions must hold; when two hold the boxes
// only meet at a corner, which is left to CornersTouch.
func (b BoundingBox) SideTouchesHead(other BoundingBox) bool {
	if b.SameOrientation(other) {
		return false
	}

	hor, ver := b, other
	if b.H != 1 {
		hor, ver = other, b
	}

	if hor.X+hor.W < ver.X || hor.X > ver.X+1 || hor.Y+1 < ver.Y || hor.Y > ver.Y+ver.H {
		return false
	}

	n := 0
	for _, edge := range [...]bool{
		hor.X+hor.W == ver.X,
		hor.X == ver.X+1,
		hor.Y+1 == ver.Y,
		hor.Y == ver.Y+ver.H,
	} {
		if edge {
			n++
		}
	}
	return n == 1
}

// CornersTouch reports whether a corner of one box coincides with the
// diagonally opposite corner of the other.
func (b BoundingBox) CornersTouch(other BoundingBox) bool {
	return (b.X == other.X+other.W && b.Y == other.Y+other.H) ||
		(b.X+b.W == other.X && b.Y == other.Y+other.H) ||
		(b.X+b.W == other.X && b.Y+b.H == other.Y) ||
		(b.X == other.X+other.W && b.Y+b.H == other.Y)
}

// IntersectionIndices returns the letter index into b and into other of the
// cell the two boxes share. It is only defined for intersecting boxes of
// different orientation.
func (b BoundingBox) IntersectionIndices(other BoundingBox) (int, int, bool) {
	if !b.Intersects(other) || b.SameOrientation(other) {
		return 0, 0, false
	}
	if b.H == 1 {
		return other.X - b.X, b.Y - other.Y, true
	}
	return other.Y - b.Y, b.X - other.X, true
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
