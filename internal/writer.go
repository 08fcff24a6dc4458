package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"crosswarped.com/interlock"
	"crosswarped.com/interlock/pkg/primitives"
)

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// ParseOutputFormat accepts "text", "json" or "yaml" in any case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputText, OutputJSON, OutputYAML:
		return f, nil
	case "":
		return OutputText, nil
	}
	return "", fmt.Errorf("output format %q: %w", s, ErrUnsupportedFormat)
}

type record struct {
	Index  int               `json:"index" yaml:"index"`
	Width  int               `json:"width" yaml:"width"`
	Height int               `json:"height" yaml:"height"`
	Words  []primitives.Word `json:"words" yaml:"words"`
	Render string            `json:"render" yaml:"render"`
}

type summary struct {
	Count int `json:"count" yaml:"count"`
}

// ResultWriter writes crosswords one at a time and finishes with a summary
// of how many were written.
type ResultWriter struct {
	w      io.Writer
	format OutputFormat
	count  int

	jsonEnc *json.Encoder
	yamlEnc *yaml.Encoder
}

func NewResultWriter(w io.Writer, format OutputFormat) (*ResultWriter, error) {
	rw := &ResultWriter{w: w, format: format}
	switch format {
	case OutputText:
	case OutputJSON:
		rw.jsonEnc = json.NewEncoder(w)
	case OutputYAML:
		rw.yamlEnc = yaml.NewEncoder(w)
		rw.yamlEnc.SetIndent(2)
	default:
		return nil, fmt.Errorf("output format %q: %w", format, ErrUnsupportedFormat)
	}
	return rw, nil
}

func (rw *ResultWriter) Write(cw interlock.Crossword) error {
	rw.count++

	var err error
	switch rw.format {
	case OutputText:
		_, err = fmt.Fprintf(rw.w, "Crossword #%d:\n%s", rw.count, cw.Render())
	case OutputJSON:
		err = rw.jsonEnc.Encode(rw.record(cw))
	case OutputYAML:
		err = rw.yamlEnc.Encode(rw.record(cw))
	}
	if err != nil {
		return fmt.Errorf("writing crossword #%d: %w", rw.count, err)
	}
	return nil
}

func (rw *ResultWriter) record(cw interlock.Crossword) record {
	width, height := cw.Size()
	return record{
		Index:  rw.count,
		Width:  width,
		Height: height,
		Words:  cw.Words(),
		Render: cw.Render(),
	}
}

// Count returns the number of crosswords written so far.
func (rw *ResultWriter) Count() int {
	return rw.count
}

// Close writes the trailing summary.
func (rw *ResultWriter) Close() error {
	var err error
	switch rw.format {
	case OutputText:
		_, err = fmt.Fprintf(rw.w, "%d crossword(s) generated\n", rw.count)
	case OutputJSON:
		err = rw.jsonEnc.Encode(summary{Count: rw.count})
	case OutputYAML:
		if err = rw.yamlEnc.Encode(summary{Count: rw.count}); err == nil {
			err = rw.yamlEnc.Close()
		}
	}
	if err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}
