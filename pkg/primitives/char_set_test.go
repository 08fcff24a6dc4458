package primitives

import (
	"testing"
)

func TestCharSet_Add(t *testing.T) {
	cs := NewCharSet()

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'a'", 'a', false, 1},
		{"add 'b'", 'b', false, 2},
		{"add 'A'", 'A', false, 3},
		{"add 'a' again", 'a', false, 3}, // should not increase count
		{"add 'é'", 'é', false, 4},
		{"add 'é' again", 'é', false, 4},
		{"add surrogate", 0xD800, true, 4},
		{"add out of range", 0x110000, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cs.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", cs.Count(), tt.wantCount)
			}
		})
	}
}

func TestCharSet_AddAll(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		second   string
		expected int
	}{
		{"add to empty set", "", "ab", 2},
		{"add overlapping sets", "a", "bc", 3},
		{"add to partially overlapping set", "abc", "ad", 4},
		{"add non-ascii", "aé", "éü", 3},
		{"add empty set", "xyz", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := CharSetOf(tt.first)
			cs.AddAll(CharSetOf(tt.second))
			if cs.Count() != tt.expected {
				t.Errorf("count = %d, want %d", cs.Count(), tt.expected)
			}
			for _, r := range tt.first + tt.second {
				if !cs.Contains(r) {
					t.Errorf("expected %q in set", r)
				}
			}
		})
	}
}

func TestCharSet_Contains(t *testing.T) {
	cs := CharSetOf("hello~ß")

	for _, r := range "helo~ß" {
		if !cs.Contains(r) {
			t.Errorf("Contains(%q) = false, want true", r)
		}
	}
	for _, r := range "HLaz?ü" {
		if cs.Contains(r) {
			t.Errorf("Contains(%q) = true, want false", r)
		}
	}
	if cs.Contains(-1) {
		t.Error("Contains(-1) = true, want false")
	}
}

func TestCharSet_Intersects(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"hello", "world", true},
		{"abc", "xyz", false},
		{"straße", "maß", true},
		{"ß", "ss", false},
		{"", "abc", false},
		{"A", "a", false},
		{"~", "~", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			if got := CharSetOf(tt.a).Intersects(CharSetOf(tt.b)); got != tt.want {
				t.Errorf("Intersects() = %v, want %v", got, tt.want)
			}
			if got := CharSetOf(tt.b).Intersects(CharSetOf(tt.a)); got != tt.want {
				t.Errorf("reversed Intersects() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSet_IsEmpty(t *testing.T) {
	if !NewCharSet().IsEmpty() {
		t.Error("expected new set to be empty")
	}
	if CharSetOf("a").IsEmpty() {
		t.Error("expected set with a letter to be non-empty")
	}
}
