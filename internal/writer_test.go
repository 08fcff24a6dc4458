package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"crosswarped.com/interlock"
	"crosswarped.com/interlock/pkg/primitives"
)

func testCrosswords() []interlock.Crossword {
	return []interlock.Crossword{
		interlock.NewCrossword(primitives.Word{Direction: primitives.DirectionHorizontal, Value: "ab"}),
		interlock.NewCrossword(primitives.Word{Direction: primitives.DirectionVertical, Value: "cd"}),
	}
}

func TestResultWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewResultWriter(&buf, OutputText)
	require.NoError(t, err)

	for _, cw := range testCrosswords() {
		require.NoError(t, rw.Write(cw))
	}
	require.NoError(t, rw.Close())

	want := "Crossword #1:\n-----\n|a b|\n-----\n" +
		"Crossword #2:\n---\n|c|\n|d|\n---\n" +
		"2 crossword(s) generated\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 2, rw.Count())
}

func TestResultWriter_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewResultWriter(&buf, OutputText)
	require.NoError(t, err)
	require.NoError(t, rw.Close())

	assert.Equal(t, "0 crossword(s) generated\n", buf.String())
}

func TestResultWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewResultWriter(&buf, OutputJSON)
	require.NoError(t, err)

	for _, cw := range testCrosswords() {
		require.NoError(t, rw.Write(cw))
	}
	require.NoError(t, rw.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	var first record
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, 2, first.Width)
	assert.Equal(t, 1, first.Height)
	assert.Equal(t, "-----\n|a b|\n-----\n", first.Render)
	assert.Equal(t, testCrosswords()[0].Words(), first.Words)

	var s summary
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &s))
	assert.Equal(t, 2, s.Count)
}

func TestResultWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	rw, err := NewResultWriter(&buf, OutputYAML)
	require.NoError(t, err)

	for _, cw := range testCrosswords() {
		require.NoError(t, rw.Write(cw))
	}
	require.NoError(t, rw.Close())

	dec := yaml.NewDecoder(&buf)

	var second record
	require.NoError(t, dec.Decode(&second))
	require.NoError(t, dec.Decode(&second))
	assert.Equal(t, 2, second.Index)
	assert.Equal(t, testCrosswords()[1].Words(), second.Words)

	var s summary
	require.NoError(t, dec.Decode(&s))
	assert.Equal(t, 2, s.Count)
}

func TestParseOutputFormat(t *testing.T) {
	for in, want := range map[string]OutputFormat{
		"":     OutputText,
		"text": OutputText,
		"JSON": OutputJSON,
		"yaml": OutputYAML,
	} {
		got, err := ParseOutputFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseOutputFormat("xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = NewResultWriter(&bytes.Buffer{}, "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
