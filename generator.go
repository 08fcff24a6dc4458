package interlock

import (
	"context"
	"iter"
	"slices"

	"crosswarped.com/interlock/pkg/primitives"
)

// Settings bundles everything that decides whether a crossword is acceptable.
type Settings struct {
	Compatibility primitives.CompatibilitySettings `json:"word_compatibility_settings" yaml:"word_compatibility_settings"`
	Crossword     CrosswordSettings                `json:"crossword_settings" yaml:"crossword_settings"`
}

func DefaultSettings() Settings {
	return Settings{Compatibility: primitives.DefaultCompatibilitySettings()}
}

// Request describes one generation: the words to interlock and the rules the
// result must follow.
type Request struct {
	Words    []string `json:"words" yaml:"words"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// Generator enumerates every crossword that uses all of its words exactly
// once.
type Generator struct {
	// Words are unique and sorted. Empty strings are dropped.
	Words    []string
	Settings Settings

	params GeneratorParams
}

type GeneratorParams struct {
	// DisableBasePruning turns off the explored-base set. The results are the
	// same; the search only visits more nodes.
	DisableBasePruning bool
}

// Stats counts what a search did so far.
type Stats struct {
	Nodes        int
	PrunedBySize int
	PrunedByBase int
	Emitted      int
	Duplicates   int
	Bases        int
}

func CreateGenerator(req Request, params GeneratorParams) *Generator {
	words := slices.DeleteFunc(slices.Clone(req.Words), func(w string) bool {
		return w == ""
	})
	slices.Sort(words)
	words = slices.Compact(words)

	return &Generator{
		Words:    words,
		Settings: req.Settings,
		params:   params,
	}
}

// GenerateAll runs the search to completion and returns every crossword in
// structural order.
func (g *Generator) GenerateAll(ctx context.Context) ([]Crossword, error) {
	it := g.Iterator()
	var out []Crossword
	for {
		cw, ok := it.Next(ctx)
		if !ok {
			break
		}
		out = append(out, cw)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(out, Crossword.Compare)
	return out, nil
}

// PossibleCrosswords lazily yields every crossword, computing only as much of
// the search as the consumer pulls.
func (g *Generator) PossibleCrosswords(ctx context.Context) iter.Seq[Crossword] {
	return func(yield func(Crossword) bool) {
		it := g.Iterator()
		for {
			cw, ok := it.Next(ctx)
			if !ok || !yield(cw) {
				return
			}
		}
	}
}

// PossibleCrosswordsRecursive yields the same crosswords as
// PossibleCrosswords using a recursive depth-first search.
func (g *Generator) PossibleCrosswordsRecursive(ctx context.Context) iter.Seq[Crossword] {
	return g.recursiveSearch(ctx, nil)
}

func (g *Generator) recursiveSearch(ctx context.Context, stats *Stats) iter.Seq[Crossword] {
	return func(yield func(Crossword) bool) {
		if len(g.Words) == 0 {
			return
		}

		s := g.newSearch()
		if stats != nil {
			defer func() { *stats = s.stats }()
		}

		var visit func(remaining []string) bool
		visit = func(remaining []string) bool {
			if ctx.Err() != nil {
				return false
			}

			switch s.enter(len(remaining)) {
			case nodePrune:
				return true
			case nodeLeaf:
				if cw, ok := s.emit(); ok {
					return yield(cw)
				}
				return true
			}

			for i, text := range remaining {
				rest := slices.Concat(remaining[:i], remaining[i+1:])
				for _, candidate := range s.cw.PossiblePlacements(text, s.settings.Compatibility) {
					s.cw.AddWord(candidate)
					more := visit(rest)
					s.backtrack(text)
					if !more {
						return false
					}
				}
			}
			return true
		}

		visit(g.Words)
	}
}

type nodeKind int

const (
	nodeExpand nodeKind = iota
	nodePrune
	nodeLeaf
)

// search is the state shared by every node of one traversal: the crossword
// being built, the explored bases and the keys of results handed out.
type search struct {
	cw       Crossword
	settings Settings
	bases    exploredBases
	seen     map[string]struct{}
	stats    Stats
}

func (g *Generator) newSearch() *search {
	return &search{
		settings: g.Settings,
		bases:    exploredBases{disabled: g.params.DisableBasePruning},
		seen:     make(map[string]struct{}),
	}
}

// enter classifies the node for the current crossword. Size constraints are
// checked first, then the explored bases, and only then whether every word
// has been placed.
func (s *search) enter(remaining int) nodeKind {
	s.stats.Nodes++
	if !s.settings.Crossword.Valid(s.cw) {
		s.stats.PrunedBySize++
		return nodePrune
	}
	if s.bases.prunes(s.cw) {
		s.stats.PrunedByBase++
		return nodePrune
	}
	if remaining == 0 {
		return nodeLeaf
	}
	return nodeExpand
}

// emit returns a copy of the current crossword unless an equal one was
// already returned.
func (s *search) emit() (Crossword, bool) {
	key := s.cw.Key()
	if _, ok := s.seen[key]; ok {
		s.stats.Duplicates++
		return Crossword{}, false
	}
	s.seen[key] = struct{}{}
	s.stats.Emitted++
	return s.cw.Clone(), true
}

// backtrack runs after the subtree below a placement of text is finished. The
// current crossword becomes an explored base and the placement is undone.
func (s *search) backtrack(text string) {
	s.bases.record(s.cw)
	s.stats.Bases = s.bases.len()
	s.cw.RemoveWord(text)
}
