package interlock

import (
	"context"
	"slices"

	"crosswarped.com/interlock/pkg/primitives"
)

// frame is one node of the traversal. wordIdx and candIdx start at -1 and
// point at the placement currently being explored below this node.
type frame struct {
	remaining []string
	wordIdx   int
	// rest is remaining without remaining[wordIdx].
	rest       []string
	candidates []primitives.Word
	candIdx    int
	entered    bool
}

func newFrame(remaining []string) frame {
	return frame{remaining: remaining, wordIdx: -1, candIdx: -1}
}

// advance moves to the next placement to explore, computing the candidates
// of the next word when the current word is exhausted. It reports false once
// every word has been tried.
func (f *frame) advance(s *search) bool {
	f.candIdx++
	for f.candIdx >= len(f.candidates) {
		f.wordIdx++
		if f.wordIdx >= len(f.remaining) {
			return false
		}
		text := f.remaining[f.wordIdx]
		f.rest = slices.Concat(f.remaining[:f.wordIdx], f.remaining[f.wordIdx+1:])
		f.candidates = s.cw.PossiblePlacements(text, s.settings.Compatibility)
		f.candIdx = 0
	}
	return true
}

// Iterator walks the search with an explicit stack of frames, so it can stop
// after any result and pick up again on the next call to Next.
//
// An Iterator is not safe for concurrent use.
type Iterator struct {
	s     *search
	stack []frame
	err   error
}

// Iterator returns a fresh iterator over every crossword of g.
func (g *Generator) Iterator() *Iterator {
	it := &Iterator{s: g.newSearch()}
	if len(g.Words) > 0 {
		it.stack = append(it.stack, newFrame(g.Words))
	}
	return it
}

// Next returns the next crossword, or false when the search is finished or
// ctx is done. A cancelled iterator keeps its position; calling Next again
// with a live context resumes where it stopped.
func (it *Iterator) Next(ctx context.Context) (Crossword, bool) {
	it.err = nil
	for len(it.stack) > 0 {
		if err := ctx.Err(); err != nil {
			it.err = err
			return Crossword{}, false
		}

		top := &it.stack[len(it.stack)-1]
		if !top.entered {
			top.entered = true
			switch it.s.enter(len(top.remaining)) {
			case nodePrune:
				it.leave()
				continue
			case nodeLeaf:
				cw, ok := it.s.emit()
				it.leave()
				if ok {
					return cw, true
				}
				continue
			}
		}

		if !top.advance(it.s) {
			it.leave()
			continue
		}

		candidate, rest := top.candidates[top.candIdx], top.rest
		it.s.cw.AddWord(candidate)
		it.stack = append(it.stack, newFrame(rest))
	}
	return Crossword{}, false
}

// leave pops the top frame and undoes the placement that led to it.
func (it *Iterator) leave() {
	it.stack = it.stack[:len(it.stack)-1]
	if len(it.stack) == 0 {
		return
	}
	parent := &it.stack[len(it.stack)-1]
	it.s.backtrack(parent.remaining[parent.wordIdx])
}

// Err returns the context error that stopped the last call to Next, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Done reports whether the search has been exhausted.
func (it *Iterator) Done() bool {
	return len(it.stack) == 0
}

// Stats returns the counters of the search so far.
func (it *Iterator) Stats() Stats {
	return it.s.stats
}
