package primitives

import "slices"

// CandidatesFor returns every placement of text that crosses existing at a
// shared letter. Each pair of matching letter occurrences produces one
// candidate, so repeated letters yield several placements.
//
// The result is sorted and free of duplicates. No check is made against any
// other word.
func CandidatesFor(existing Word, text string) []Word {
	shared := CharSetOf(existing.Value)
	if !shared.Intersects(CharSetOf(text)) {
		return nil
	}

	existingRunes := []rune(existing.Value)
	dir := existing.Direction.Opposite()

	var out []Word
	i := 0
	for _, r := range text {
		if !shared.Contains(r) {
			i++
			continue
		}
		for j, er := range existingRunes {
			if er != r {
				continue
			}
			var pos Position
			if existing.Direction == DirectionHorizontal {
				pos = Position{X: existing.Position.X + j, Y: existing.Position.Y - i}
			} else {
				pos = Position{X: existing.Position.X - i, Y: existing.Position.Y + j}
			}
			out = append(out, Word{Position: pos, Direction: dir, Value: text})
		}
		i++
	}

	return SortWords(out)
}

// SortWords sorts words in place, drops duplicates and returns the compacted
// slice.
func SortWords(words []Word) []Word {
	slices.SortFunc(words, Word.Compare)
	return slices.CompactFunc(words, func(a, b Word) bool {
		return a == b
	})
}
