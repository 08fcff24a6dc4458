package interlock

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"crosswarped.com/interlock/pkg/primitives"
)

// Crossword is a set of placed words, unique by value.
//
// Words are kept sorted and the crossword is always normalized: the smallest
// X and the smallest Y among word positions are both 0. Mutating methods need
// a pointer; a Crossword handed out as a result is never mutated again.
type Crossword struct {
	words []primitives.Word
}

// NewCrossword builds a crossword from words and normalizes it once. Later
// words whose value is already present are ignored.
func NewCrossword(words ...primitives.Word) Crossword {
	var cw Crossword
	for _, w := range words {
		if _, ok := cw.FindWord(w.Value); ok {
			continue
		}
		cw.insert(w)
	}
	cw.Normalize()
	return cw
}

func (cw Crossword) Len() int {
	return len(cw.words)
}

func (cw Crossword) IsEmpty() bool {
	return len(cw.words) == 0
}

// Words returns a copy of the placed words in sorted order.
func (cw Crossword) Words() []primitives.Word {
	return slices.Clone(cw.words)
}

func (cw *Crossword) insert(w primitives.Word) {
	i, _ := slices.BinarySearchFunc(cw.words, w, primitives.Word.Compare)
	cw.words = slices.Insert(cw.words, i, w)
}

// AddWord places w unless a word with the same value is already placed.
func (cw *Crossword) AddWord(w primitives.Word) {
	if _, ok := cw.FindWord(w.Value); ok {
		return
	}
	cw.insert(w)
	cw.Normalize()
}

// RemoveWord removes the word with the given value, if any.
func (cw *Crossword) RemoveWord(text string) {
	i := slices.IndexFunc(cw.words, func(w primitives.Word) bool {
		return w.Value == text
	})
	if i < 0 {
		return
	}
	cw.words = slices.Delete(cw.words, i, i+1)
	cw.Normalize()
}

// Normalize translates every word so that the minimum X and Y of the word
// positions become 0. Translation keeps the sort order intact.
func (cw *Crossword) Normalize() {
	if len(cw.words) == 0 {
		return
	}
	minX, minY := cw.words[0].Position.X, cw.words[0].Position.Y
	for _, w := range cw.words[1:] {
		minX = min(minX, w.Position.X)
		minY = min(minY, w.Position.Y)
	}
	if minX == 0 && minY == 0 {
		return
	}
	for i := range cw.words {
		cw.words[i] = cw.words[i].Translate(-minX, -minY)
	}
}

// FindWord returns the placed word with the given value.
func (cw Crossword) FindWord(text string) (primitives.Word, bool) {
	for _, w := range cw.words {
		if w.Value == text {
			return w, true
		}
	}
	return primitives.Word{}, false
}

// ContainsCrossword reports whether a single translation maps every word of
// other onto a word of cw with the same value and direction.
func (cw Crossword) ContainsCrossword(other Crossword) bool {
	if len(other.words) > len(cw.words) {
		return false
	}

	var dx, dy int
	for i, ow := range other.words {
		w, ok := cw.FindWord(ow.Value)
		if !ok || w.Direction != ow.Direction {
			return false
		}
		ox, oy := w.Position.X-ow.Position.X, w.Position.Y-ow.Position.Y
		if i == 0 {
			dx, dy = ox, oy
			continue
		}
		if ox != dx || oy != dy {
			return false
		}
	}
	return true
}

// PossiblePlacements returns every placement of text that crosses a placed
// word and is compatible with all of them, sorted and without duplicates.
//
// An empty crossword accepts text horizontally at the origin.
func (cw Crossword) PossiblePlacements(text string, compat primitives.CompatibilitySettings) []primitives.Word {
	if len(cw.words) == 0 {
		return []primitives.Word{{Direction: primitives.DirectionHorizontal, Value: text}}
	}

	var out []primitives.Word
	for _, existing := range cw.words {
		for _, candidate := range primitives.CandidatesFor(existing, text) {
			if cw.CanBeAdded(candidate, compat) {
				out = append(out, candidate)
			}
		}
	}
	return primitives.SortWords(out)
}

// CanBeAdded reports whether candidate is compatible with every placed word.
func (cw Crossword) CanBeAdded(candidate primitives.Word, compat primitives.CompatibilitySettings) bool {
	for _, w := range cw.words {
		if !compat.AreCompatible(w, candidate) {
			return false
		}
	}
	return true
}

// Size returns the width and height of the smallest rectangle anchored at
// the origin that covers every placed word.
func (cw Crossword) Size() (width, height int) {
	for _, w := range cw.words {
		width = max(width, w.Position.X+1)
		height = max(height, w.Position.Y+1)
		if w.Direction == primitives.DirectionHorizontal {
			width = max(width, w.Position.X+w.Len())
		} else {
			height = max(height, w.Position.Y+w.Len())
		}
	}
	return width, height
}

// Grid lays the crossword out on a rune matrix, using Blank for empty cells.
func (cw Crossword) Grid() Grid {
	g := NewGrid(cw.Size())
	for _, w := range cw.words {
		g.Place(w)
	}
	return g
}

// Render returns the bordered text form of the crossword.
func (cw Crossword) Render() string {
	return cw.Grid().Render()
}

// Clone returns a deep copy of cw.
func (cw Crossword) Clone() Crossword {
	return Crossword{words: slices.Clone(cw.words)}
}

func (cw Crossword) Equal(other Crossword) bool {
	return slices.Equal(cw.words, other.words)
}

// Compare orders crosswords lexicographically by their sorted words; a
// crossword that is a prefix of another sorts first.
func (cw Crossword) Compare(other Crossword) int {
	return slices.CompareFunc(cw.words, other.words, primitives.Word.Compare)
}

// Key returns a string that is equal for two crosswords exactly when they are
// Equal.
func (cw Crossword) Key() string {
	var sb strings.Builder
	for _, w := range cw.words {
		fmt.Fprintf(&sb, "%d,%d,%d,%q;", w.Position.X, w.Position.Y, int(w.Direction), w.Value)
	}
	return sb.String()
}

func (cw Crossword) String() string {
	parts := make([]string, len(cw.words))
	for i, w := range cw.words {
		parts[i] = w.String()
	}
	return "Crossword{" + strings.Join(parts, ", ") + "}"
}

// MarshalJSON encodes the crossword as its list of words.
func (cw Crossword) MarshalJSON() ([]byte, error) {
	words := cw.words
	if words == nil {
		words = []primitives.Word{}
	}
	return json.Marshal(words)
}

// UnmarshalJSON decodes a list of words and normalizes the result.
func (cw *Crossword) UnmarshalJSON(data []byte) error {
	var words []primitives.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return fmt.Errorf("decoding crossword: %w", err)
	}
	*cw = NewCrossword(words...)
	return nil
}

// MarshalYAML encodes the crossword as its list of words.
func (cw Crossword) MarshalYAML() (any, error) {
	return cw.Words(), nil
}
