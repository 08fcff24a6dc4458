package interlock

import (
	"fmt"
	"strings"

	"crosswarped.com/interlock/pkg/primitives"
)

// Blank marks a cell no word covers.
const Blank = ' '

// Grid is a 2D grid of runes.
//
// It represents a laid out crossword, with Blank marking empty cells.
type Grid struct {
	cells         [][]rune
	width, height int
}

// NewGrid returns a width x height grid of Blank cells.
func NewGrid(width, height int) Grid {
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(string(Blank), width))
	}
	return Grid{cells: cells, width: width, height: height}
}

func (g Grid) Width() int {
	return g.width
}

func (g Grid) Height() int {
	return g.height
}

// Place writes the letters of w into the grid. Letters falling outside the
// grid are dropped.
func (g Grid) Place(w primitives.Word) {
	x, y := w.Position.X, w.Position.Y
	for _, r := range w.Value {
		if g.inside(x, y) {
			g.cells[y][x] = r
		}
		if w.Direction == primitives.DirectionHorizontal {
			x++
		} else {
			y++
		}
	}
}

func (g Grid) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Get returns the letter at (x, y), or Blank outside the grid.
func (g Grid) Get(x, y int) rune {
	if !g.inside(x, y) {
		return Blank
	}
	return g.cells[y][x]
}

// Filled counts the cells holding a letter.
func (g Grid) Filled() int {
	n := 0
	for _, row := range g.cells {
		for _, r := range row {
			if r != Blank {
				n++
			}
		}
	}
	return n
}

// Lines returns one string per row, without a frame.
func (g Grid) Lines() []string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		lines[y] = string(row)
	}
	return lines
}

// Render draws the grid inside a frame. The top and bottom rows are 2*width+1
// dashes; every grid row is wrapped in '|' with a single space between cells.
// Each line, including the last, ends in a newline.
func (g Grid) Render() string {
	frame := strings.Repeat("-", 2*g.width+1) + "\n"

	var sb strings.Builder
	sb.WriteString(frame)
	for _, row := range g.cells {
		sb.WriteByte('|')
		for x, r := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(r)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(frame)
	return sb.String()
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, filled: %d}\n%s",
		g.width, g.height, g.Filled(), strings.Join(g.Lines(), "\n"))
}
