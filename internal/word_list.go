package internal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

type WordListParams struct {
	Words         []string
	ExcludedWords []string
	MinWordLength *int
	MaxWordLength *int
}

type params struct {
	words         []string
	excludedWords []string
	minWordLength int
	maxWordLength int
}

func asParams(p WordListParams) params {
	pp := params{
		words:         p.Words,
		excludedWords: p.ExcludedWords,
	}

	if p.MinWordLength == nil {
		pp.minWordLength = 2
	} else {
		pp.minWordLength = *p.MinWordLength
	}

	if p.MaxWordLength == nil || *p.MaxWordLength <= 0 {
		pp.maxWordLength = math.MaxInt
	} else {
		pp.maxWordLength = *p.MaxWordLength
	}

	return pp
}

func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// NormalizeWordList lowercases and trims every word, skips blank lines and
// '#' comments, drops excluded words and words outside the length bounds, and
// returns the remaining words sorted and deduplicated.
//
// It returns ErrNoWords if nothing is left.
func NormalizeWordList(p WordListParams) ([]string, error) {
	params := asParams(p)

	excluded := make(map[string]bool)
	for _, word := range params.excludedWords {
		excluded[normalizeWord(word)] = true
	}

	var words []string
	for _, raw := range params.words {
		word := normalizeWord(raw)
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		for _, r := range word {
			if !unicode.IsLetter(r) {
				return nil, fmt.Errorf("word %q contains non-letter %q: %w", word, r, ErrInvalidWord)
			}
		}
		if n := utf8.RuneCountInString(word); n < params.minWordLength || n > params.maxWordLength {
			continue
		}
		if excluded[word] {
			continue
		}
		words = append(words, word)
	}

	slices.Sort(words)
	words = slices.Compact(words)
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	return words, nil
}

// ReadWords reads one word per line from r. Blank lines and lines starting
// with '#' are skipped; everything else is returned as written.
func ReadWords(ctx context.Context, r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading words: %w", err)
	}
	return words, nil
}

// LoadWordFile reads the words of a line oriented word file.
func LoadWordFile(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word file: %w", err)
	}
	defer f.Close()

	words, err := ReadWords(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
