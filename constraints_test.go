package interlock

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSizeConstraint_Allows(t *testing.T) {
	tests := []struct {
		constraint    SizeConstraint
		width, height int
		want          bool
	}{
		{MaxLength(5), 5, 9, true},
		{MaxLength(5), 6, 1, false},
		{MaxHeight(3), 9, 3, true},
		{MaxHeight(3), 1, 4, false},
		{MaxArea(12), 3, 4, true},
		{MaxArea(12), 4, 4, false},
		{SizeConstraint{}, 100, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.constraint.String(), func(t *testing.T) {
			if got := tt.constraint.Allows(tt.width, tt.height); got != tt.want {
				t.Errorf("%v.Allows(%d, %d) = %v, want %v", tt.constraint, tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestCrosswordSettings_Valid(t *testing.T) {
	cw := helloCrossword() // 5x5

	tests := []struct {
		name     string
		settings CrosswordSettings
		want     bool
	}{
		{"no constraints", CrosswordSettings{}, true},
		{"all hold", CrosswordSettings{SizeConstraints: []SizeConstraint{MaxLength(5), MaxHeight(5), MaxArea(25)}}, true},
		{"one fails", CrosswordSettings{SizeConstraints: []SizeConstraint{MaxLength(13), MaxArea(24)}}, false},
		{"too narrow", CrosswordSettings{SizeConstraints: []SizeConstraint{MaxLength(4)}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.Valid(cw); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrosswordSettings_JSON(t *testing.T) {
	const input = `{"size_constraints": [{"kind": "max_length", "limit": 13}, {"kind": "max_area", "limit": 100}, {"kind": "none"}]}`

	var got CrosswordSettings
	if err := json.Unmarshal([]byte(input), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	want := CrosswordSettings{SizeConstraints: []SizeConstraint{MaxLength(13), MaxArea(100), {}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded settings mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(MaxHeight(4))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != `{"kind":"max_height","limit":4}` {
		t.Errorf("json.Marshal(MaxHeight(4)) = %s", data)
	}

	var bad CrosswordSettings
	if err := json.Unmarshal([]byte(`{"size_constraints": [{"kind": "max_depth"}]}`), &bad); err == nil {
		t.Error("expected an error for an unknown constraint kind")
	}
}
