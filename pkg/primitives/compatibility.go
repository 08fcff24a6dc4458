package primitives

// CompatibilitySettings decides which kinds of contact are allowed between two
// placed words that do not cross each other.
type CompatibilitySettings struct {
	// SideBySide allows parallel words in adjacent rows (or columns) that
	// overlap along their run.
	SideBySide bool `json:"side_by_side" yaml:"side_by_side"`
	// HeadByHead allows parallel words on the same line with no gap.
	HeadByHead bool `json:"head_by_head" yaml:"head_by_head"`
	// SideByHead allows the end of a word to touch the flank of a
	// perpendicular word.
	SideByHead bool `json:"side_by_head" yaml:"side_by_head"`
	// CornerByCorner allows words whose boxes meet only at a diagonal corner.
	CornerByCorner bool `json:"corner_by_corner" yaml:"corner_by_corner"`
}

// DefaultCompatibilitySettings only allows corner contact.
func DefaultCompatibilitySettings() CompatibilitySettings {
	return CompatibilitySettings{CornerByCorner: true}
}

// AreCompatible reports whether first and second may both be part of the same
// crossword.
func (s CompatibilitySettings) AreCompatible(first, second Word) bool {
	fb := first.BoundingBox()
	sb := second.BoundingBox()

	if !s.CornerByCorner && fb.CornersTouch(sb) {
		return false
	}

	if first.Direction == second.Direction {
		if !s.HeadByHead && fb.HeadTouchesHead(sb) {
			return false
		}
		if !s.SideBySide && fb.SideTouchesSide(sb) {
			return false
		}
		// Parallel words never share cells.
		return !fb.Intersects(sb)
	}

	if !s.SideByHead && fb.SideTouchesHead(sb) {
		return false
	}
	if !fb.Intersects(sb) {
		return true
	}

	fi, si, ok := fb.IntersectionIndices(sb)
	if !ok {
		return false
	}
	fr, ok := first.RuneAt(fi)
	if !ok {
		return false
	}
	sr, ok := second.RuneAt(si)
	if !ok {
		return false
	}
	return fr == sr
}
