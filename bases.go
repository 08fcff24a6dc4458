package interlock

import "slices"

// exploredBases holds partial crosswords whose subtrees were fully searched.
// Any node containing one of them can only reproduce results that were
// already found.
//
// The set is unbounded; inputs with many incomparable shapes keep growing it.
type exploredBases struct {
	bases    []Crossword
	disabled bool
}

func (b *exploredBases) prunes(cw Crossword) bool {
	if b.disabled {
		return false
	}
	return slices.ContainsFunc(b.bases, func(base Crossword) bool {
		return cw.ContainsCrossword(base)
	})
}

// record drops every base that contains cw and adds a copy of cw.
func (b *exploredBases) record(cw Crossword) {
	if b.disabled {
		return
	}
	b.bases = slices.DeleteFunc(b.bases, func(base Crossword) bool {
		return base.ContainsCrossword(cw)
	})
	b.bases = append(b.bases, cw.Clone())
}

func (b *exploredBases) len() int {
	return len(b.bases)
}
