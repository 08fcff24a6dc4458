package primitives

import (
	"fmt"
	"unicode/utf8"
)

// CharSet efficiently represents a set of letters.
//
// ASCII letters live in a bitmask; anything else falls back to a map.
type CharSet struct {
	ascii [2]uint64
	other map[rune]struct{}
	count int
}

func NewCharSet() *CharSet {
	return &CharSet{}
}

// CharSetOf returns the set of letters appearing in s.
func CharSetOf(s string) *CharSet {
	c := NewCharSet()
	for _, r := range s {
		// Every rune produced by ranging over a string is valid or RuneError,
		// which is itself a valid rune.
		_ = c.Add(r)
	}
	return c
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if !utf8.ValidRune(r) {
		return fmt.Errorf("character %U is not a valid rune", r)
	}

	if r < 128 {
		bit := uint64(1) << (r % 64)
		if c.ascii[r/64]&bit != 0 {
			return nil
		}
		c.ascii[r/64] |= bit
		c.count++
		return nil
	}

	if c.other == nil {
		c.other = make(map[rune]struct{})
	}
	if _, ok := c.other[r]; ok {
		return nil
	}
	c.other[r] = struct{}{}
	c.count++
	return nil
}

// AddAll adds all characters from another set to this set.
func (c *CharSet) AddAll(other *CharSet) {
	for i, word := range other.ascii {
		for word != 0 {
			low := word & -word
			if c.ascii[i]&low == 0 {
				c.ascii[i] |= low
				c.count++
			}
			word &^= low
		}
	}
	for r := range other.other {
		_ = c.Add(r)
	}
}

// Contains checks if a character is in the set.
func (c *CharSet) Contains(r rune) bool {
	if r >= 0 && r < 128 {
		return c.ascii[r/64]&(uint64(1)<<(r%64)) != 0
	}
	_, ok := c.other[r]
	return ok
}

// Intersects reports whether the two sets share at least one character.
func (c *CharSet) Intersects(other *CharSet) bool {
	if c.ascii[0]&other.ascii[0] != 0 || c.ascii[1]&other.ascii[1] != 0 {
		return true
	}
	small, large := c.other, other.other
	if len(small) > len(large) {
		small, large = large, small
	}
	for r := range small {
		if _, ok := large[r]; ok {
			return true
		}
	}
	return false
}

// IsEmpty checks if the set has no characters.
func (c *CharSet) IsEmpty() bool {
	return c.count == 0
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return c.count
}
