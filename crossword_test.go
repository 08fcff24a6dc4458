package interlock

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"crosswarped.com/interlock/pkg/primitives"
)

func hor(x, y int, value string) primitives.Word {
	return primitives.Word{Position: primitives.Position{X: x, Y: y}, Direction: primitives.DirectionHorizontal, Value: value}
}

func ver(x, y int, value string) primitives.Word {
	return primitives.Word{Position: primitives.Position{X: x, Y: y}, Direction: primitives.DirectionVertical, Value: value}
}

// helloCrossword is built from unnormalized positions on purpose.
func helloCrossword() Crossword {
	return NewCrossword(
		hor(-1, -1, "hello"),
		ver(1, -1, "local"),
		hor(1, 1, "cat"),
		ver(2, 1, "and"),
		ver(3, 1, "toy"),
	)
}

func TestCrossword_Normalize(t *testing.T) {
	cw := helloCrossword()

	want := []primitives.Word{
		hor(0, 0, "hello"),
		ver(2, 0, "local"),
		hor(2, 2, "cat"),
		ver(3, 2, "and"),
		ver(4, 2, "toy"),
	}
	if diff := cmp.Diff(want, cw.Words()); diff != "" {
		t.Errorf("NewCrossword() words mismatch (-want +got):\n%s", diff)
	}

	again := cw.Clone()
	again.Normalize()
	if !again.Equal(cw) {
		t.Errorf("Normalize is not idempotent: %v != %v", again, cw)
	}
}

func TestCrossword_RemoveWord(t *testing.T) {
	cw := helloCrossword()
	cw.RemoveWord("toy")

	want := NewCrossword(
		hor(0, 0, "hello"),
		ver(2, 0, "local"),
		hor(2, 2, "cat"),
		ver(3, 2, "and"),
	)
	if !cw.Equal(want) {
		t.Errorf("RemoveWord(toy) = %v, want %v", cw, want)
	}

	cw.RemoveWord("missing")
	if !cw.Equal(want) {
		t.Errorf("RemoveWord of an absent word changed the crossword: %v", cw)
	}

	cw.RemoveWord("hello")
	want = NewCrossword(ver(0, 0, "local"), hor(0, 2, "cat"), ver(1, 2, "and"))
	if !cw.Equal(want) {
		t.Errorf("RemoveWord(hello) = %v, want %v", cw, want)
	}
}

func TestCrossword_AddWord(t *testing.T) {
	var cw Crossword
	cw.AddWord(hor(3, 3, "hello"))
	cw.AddWord(ver(1, 2, "local"))

	want := NewCrossword(hor(0, 0, "hello"), ver(1, 2, "local"))
	if diff := cmp.Diff(want.Words(), cw.Words()); diff != "" {
		t.Errorf("AddWord() words mismatch (-want +got):\n%s", diff)
	}

	cw.AddWord(ver(-1, -2, "world"))
	want = NewCrossword(hor(1, 2, "hello"), ver(2, 4, "local"), ver(0, 0, "world"))
	if !cw.Equal(want) {
		t.Errorf("AddWord() = %v, want %v", cw, want)
	}

	cw.AddWord(ver(7, 7, "hello"))
	if !cw.Equal(want) {
		t.Errorf("adding a word with an existing value changed the crossword: %v", cw)
	}
}

func TestCrossword_FindWord(t *testing.T) {
	cw := helloCrossword()

	w, ok := cw.FindWord("cat")
	if !ok {
		t.Fatal("FindWord(cat) found nothing")
	}
	if diff := cmp.Diff(hor(2, 2, "cat"), w); diff != "" {
		t.Errorf("FindWord(cat) mismatch (-want +got):\n%s", diff)
	}

	if _, ok := cw.FindWord("Cat"); ok {
		t.Error("FindWord should be case sensitive")
	}
}

func TestCrossword_ContainsCrossword(t *testing.T) {
	cw := helloCrossword()

	tests := []struct {
		name  string
		other Crossword
		want  bool
	}{
		{
			name:  "itself",
			other: helloCrossword(),
			want:  true,
		},
		{
			name:  "translated corner",
			other: NewCrossword(hor(2, 1, "cat"), ver(3, 1, "and"), ver(4, 1, "toy")),
			want:  true,
		},
		{
			name:  "shifted word",
			other: NewCrossword(ver(2, 2, "and"), ver(3, 1, "toy")),
			want:  false,
		},
		{
			name:  "different direction",
			other: NewCrossword(ver(0, 0, "hello")),
			want:  false,
		},
		{
			name:  "unknown word",
			other: NewCrossword(hor(0, 0, "dog")),
			want:  false,
		},
		{
			name:  "empty",
			other: Crossword{},
			want:  true,
		},
		{
			name:  "more words",
			other: NewCrossword(append(helloCrossword().Words(), hor(0, 7, "extra"))...),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cw.ContainsCrossword(tt.other); got != tt.want {
				t.Errorf("ContainsCrossword(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestCrossword_Render(t *testing.T) {
	tests := []struct {
		name string
		cw   Crossword
		want string
	}{
		{
			name: "hello",
			cw:   helloCrossword(),
			want: "-----------\n" +
				"|h e l l o|\n" +
				"|    o    |\n" +
				"|    c a t|\n" +
				"|    a n o|\n" +
				"|    l d y|\n" +
				"-----------\n",
		},
		{
			name: "single word",
			cw:   NewCrossword(hor(0, 0, "hello")),
			want: "-----------\n|h e l l o|\n-----------\n",
		},
		{
			name: "single vertical word",
			cw:   NewCrossword(ver(4, 4, "abc")),
			want: "---\n|a|\n|b|\n|c|\n---\n",
		},
		{
			name: "empty",
			cw:   Crossword{},
			want: "-\n-\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.cw.Render()); diff != "" {
				t.Errorf("Render() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCrossword_Size(t *testing.T) {
	tests := []struct {
		name          string
		cw            Crossword
		width, height int
	}{
		{"hello", helloCrossword(), 5, 5},
		{"empty", Crossword{}, 0, 0},
		{"horizontal", NewCrossword(hor(0, 0, "abcd")), 4, 1},
		{"vertical", NewCrossword(ver(0, 0, "abcd")), 1, 4},
		{"unicode", NewCrossword(hor(0, 0, "héllo")), 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.cw.Size()
			if w != tt.width || h != tt.height {
				t.Errorf("Size() = (%d, %d), want (%d, %d)", w, h, tt.width, tt.height)
			}
		})
	}
}

func TestCrossword_PossiblePlacements(t *testing.T) {
	cw := NewCrossword(
		hor(0, 0, "hello"),
		ver(2, 0, "local"),
		hor(0, 2, "tac"),
	)

	got := cw.PossiblePlacements("hatlo", primitives.DefaultCompatibilitySettings())
	want := []primitives.Word{
		hor(-1, 4, "hatlo"),
		ver(0, 0, "hatlo"),
		ver(4, -4, "hatlo"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PossiblePlacements(hatlo) mismatch (-want +got):\n%s", diff)
	}

	for _, w := range got {
		if !cw.CanBeAdded(w, primitives.DefaultCompatibilitySettings()) {
			t.Errorf("placement %v cannot be added", w)
		}
	}
}

func TestCrossword_PossiblePlacements_Empty(t *testing.T) {
	var cw Crossword
	got := cw.PossiblePlacements("seed", primitives.DefaultCompatibilitySettings())
	if diff := cmp.Diff([]primitives.Word{hor(0, 0, "seed")}, got); diff != "" {
		t.Errorf("PossiblePlacements on empty crossword mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossword_PossiblePlacements_NoSharedLetters(t *testing.T) {
	cw := NewCrossword(hor(0, 0, "abc"))
	if got := cw.PossiblePlacements("xyz", primitives.DefaultCompatibilitySettings()); len(got) != 0 {
		t.Errorf("PossiblePlacements(xyz) = %v, want none", got)
	}
}

func TestCrossword_CloneIsIndependent(t *testing.T) {
	cw := helloCrossword()
	clone := cw.Clone()
	clone.RemoveWord("hello")

	if cw.Len() != 5 {
		t.Errorf("source crossword lost words after mutating its clone: %v", cw)
	}
	if clone.Equal(cw) {
		t.Error("clone should differ after RemoveWord")
	}
}

func TestCrossword_CompareAndKey(t *testing.T) {
	short := NewCrossword(hor(0, 0, "ab"))
	long := NewCrossword(hor(0, 0, "ab"), ver(1, 0, "bc"))
	other := NewCrossword(ver(0, 0, "ab"), hor(0, 1, "bc"))

	if short.Compare(long) >= 0 {
		t.Error("a prefix should sort before the longer crossword")
	}
	if long.Compare(long.Clone()) != 0 {
		t.Error("a crossword should compare equal to its clone")
	}
	if long.Key() == other.Key() {
		t.Errorf("different crosswords share key %q", long.Key())
	}
	if long.Key() != long.Clone().Key() {
		t.Error("equal crosswords should share a key")
	}
}

func TestCrossword_JSON(t *testing.T) {
	cw := helloCrossword()

	data, err := json.Marshal(cw)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded Crossword
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if !decoded.Equal(cw) {
		t.Errorf("decoded %v, want %v", decoded, cw)
	}

	data, err = json.Marshal(Crossword{})
	if err != nil {
		t.Fatalf("json.Marshal(empty) error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("json.Marshal(empty) = %s, want []", data)
	}
}
