package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"crosswarped.com/interlock"
)

// RequestFile is the on-disk form of a generation request.
//
//	words: [hello, local, cat]
//	word_file: more-words.txt
//	word_compatibility_settings:
//	  side_by_head: true
//	crossword_settings:
//	  size_constraints:
//	    - kind: max_length
//	      limit: 13
type RequestFile struct {
	Words []string `json:"words" yaml:"words"`
	// WordFile is resolved relative to the request file.
	WordFile string `json:"word_file,omitempty" yaml:"word_file,omitempty"`

	interlock.Settings `yaml:",inline"`
}

// LoadRequestFile reads a JSON (.json) or YAML (.yaml, .yml) request file.
// Settings left out of the file keep their defaults.
func LoadRequestFile(ctx context.Context, path string) (RequestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RequestFile{}, fmt.Errorf("reading request file: %w", err)
	}

	rf, err := ParseRequest(data, filepath.Ext(path))
	if err != nil {
		return RequestFile{}, fmt.Errorf("%s: %w", path, err)
	}

	if rf.WordFile != "" {
		wordPath := rf.WordFile
		if !filepath.IsAbs(wordPath) {
			wordPath = filepath.Join(filepath.Dir(path), wordPath)
		}
		words, err := LoadWordFile(ctx, wordPath)
		if err != nil {
			return RequestFile{}, err
		}
		rf.Words = append(rf.Words, words...)
	}

	return rf, nil
}

// ParseRequest decodes a request in the format named by ext.
func ParseRequest(data []byte, ext string) (RequestFile, error) {
	rf := RequestFile{Settings: interlock.DefaultSettings()}

	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		if err := json.Unmarshal(data, &rf); err != nil {
			return RequestFile{}, fmt.Errorf("decoding JSON request: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return RequestFile{}, fmt.Errorf("decoding YAML request: %w", err)
		}
	default:
		return RequestFile{}, fmt.Errorf("request file extension %q: %w", ext, ErrUnsupportedFormat)
	}

	if err := ValidateSettings(rf.Settings); err != nil {
		return RequestFile{}, err
	}
	return rf, nil
}

// ValidateSettings rejects size constraints without a usable limit.
func ValidateSettings(s interlock.Settings) error {
	for _, c := range s.Crossword.SizeConstraints {
		switch c.Kind {
		case interlock.SizeConstraintNone:
		case interlock.SizeConstraintMaxLength, interlock.SizeConstraintMaxHeight, interlock.SizeConstraintMaxArea:
			if c.Limit <= 0 {
				return fmt.Errorf("%s needs a positive limit, got %d: %w", c.Kind, c.Limit, ErrInvalidSettings)
			}
		default:
			return fmt.Errorf("unknown size constraint %v: %w", c.Kind, ErrInvalidSettings)
		}
	}
	return nil
}
