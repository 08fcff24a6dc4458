package interlock

import (
	"fmt"
	"strings"
)

// SizeConstraintKind selects which dimension of a crossword a SizeConstraint
// caps.
type SizeConstraintKind int

const (
	SizeConstraintNone SizeConstraintKind = iota
	SizeConstraintMaxLength
	SizeConstraintMaxHeight
	SizeConstraintMaxArea
)

func (k SizeConstraintKind) String() string {
	switch k {
	case SizeConstraintNone:
		return "none"
	case SizeConstraintMaxLength:
		return "max_length"
	case SizeConstraintMaxHeight:
		return "max_height"
	case SizeConstraintMaxArea:
		return "max_area"
	default:
		return fmt.Sprintf("SizeConstraintKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SizeConstraintKind) MarshalText() ([]byte, error) {
	if k < SizeConstraintNone || k > SizeConstraintMaxArea {
		return nil, fmt.Errorf("unknown size constraint kind %d", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SizeConstraintKind) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "", "none":
		*k = SizeConstraintNone
	case "max_length", "maxlength", "max_width":
		*k = SizeConstraintMaxLength
	case "max_height", "maxheight":
		*k = SizeConstraintMaxHeight
	case "max_area", "maxarea":
		*k = SizeConstraintMaxArea
	default:
		return fmt.Errorf("unknown size constraint kind %q", text)
	}
	return nil
}

// SizeConstraint caps the width, height or area of a crossword.
type SizeConstraint struct {
	Kind  SizeConstraintKind `json:"kind" yaml:"kind"`
	Limit int                `json:"limit,omitempty" yaml:"limit,omitempty"`
}

func MaxLength(n int) SizeConstraint {
	return SizeConstraint{Kind: SizeConstraintMaxLength, Limit: n}
}

func MaxHeight(n int) SizeConstraint {
	return SizeConstraint{Kind: SizeConstraintMaxHeight, Limit: n}
}

func MaxArea(n int) SizeConstraint {
	return SizeConstraint{Kind: SizeConstraintMaxArea, Limit: n}
}

// Allows reports whether a crossword of the given size satisfies c.
func (c SizeConstraint) Allows(width, height int) bool {
	switch c.Kind {
	case SizeConstraintMaxLength:
		return width <= c.Limit
	case SizeConstraintMaxHeight:
		return height <= c.Limit
	case SizeConstraintMaxArea:
		return width*height <= c.Limit
	default:
		return true
	}
}

func (c SizeConstraint) String() string {
	if c.Kind == SizeConstraintNone {
		return c.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", c.Kind, c.Limit)
}

// CrosswordSettings holds the size constraints a crossword must satisfy. All
// of them must hold.
type CrosswordSettings struct {
	SizeConstraints []SizeConstraint `json:"size_constraints" yaml:"size_constraints"`
}

// Valid reports whether cw satisfies every size constraint. Adding words
// never shrinks a crossword, so an invalid partial crossword stays invalid.
func (s CrosswordSettings) Valid(cw Crossword) bool {
	if len(s.SizeConstraints) == 0 {
		return true
	}
	width, height := cw.Size()
	for _, c := range s.SizeConstraints {
		if !c.Allows(width, height) {
			return false
		}
	}
	return true
}
