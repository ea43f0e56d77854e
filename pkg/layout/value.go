package layout

import "math"

// maxSize is the sentinel for "no maximum" on a sizing axis.
const maxSize = float32(math.MaxFloat32)

// SizingType specifies how a SizingAxis is interpreted.
type SizingType uint8

const (
	SizingFit     SizingType = iota // Size to content, within [Min, Max]
	SizingGrow                      // Fill remaining space, within [Min, Max]
	SizingFixed                     // Exact pixel value
	SizingPercent                   // Fraction of the space offered by the parent
)

// SizingAxis describes one axis's sizing policy.
// Min and Max bound the resolved size for Fit and Grow; for Fixed they both
// equal the fixed value. Percent carries the 0..1 fraction in Percent and
// uses Min/Max only as an explicit clamp pair.
type SizingAxis struct {
	Min, Max float32
	Percent  float32
	Type     SizingType
}

// Fit returns a SizingAxis that sizes to content.
func Fit() SizingAxis {
	return SizingAxis{Type: SizingFit, Max: maxSize}
}

// FitMinMax returns a content-sized SizingAxis bounded to [min, max].
// Pass 0 for max to leave it unbounded.
func FitMinMax(min, max float32) SizingAxis {
	if max <= 0 {
		max = maxSize
	}
	return SizingAxis{Type: SizingFit, Min: min, Max: max}
}

// Grow returns a SizingAxis that fills the remaining space.
func Grow() SizingAxis {
	return SizingAxis{Type: SizingGrow, Max: maxSize}
}

// GrowMinMax returns a space-filling SizingAxis bounded to [min, max].
// Pass 0 for max to leave it unbounded.
func GrowMinMax(min, max float32) SizingAxis {
	if max <= 0 {
		max = maxSize
	}
	return SizingAxis{Type: SizingGrow, Min: min, Max: max}
}

// Fixed returns a SizingAxis with an exact pixel size.
func Fixed(px float32) SizingAxis {
	return SizingAxis{Type: SizingFixed, Min: px, Max: px}
}

// Percent returns a SizingAxis sized as a fraction (0..1) of the space the
// parent offers.
func Percent(p float32) SizingAxis {
	return SizingAxis{Type: SizingPercent, Percent: p, Max: maxSize}
}

// Sizing holds the sizing policy for both axes.
type Sizing struct {
	Width  SizingAxis
	Height SizingAxis
}

// axis returns the policy for the given axis.
func (s Sizing) axis(xAxis bool) SizingAxis {
	if xAxis {
		return s.Width
	}
	return s.Height
}

// hasMax returns true if the axis carries a finite maximum.
func (a SizingAxis) hasMax() bool {
	return a.Max > 0 && a.Max < maxSize
}

// clamp restricts v to [a.Min, a.Max]. A zero Max means unbounded, so the
// zero-value axis never pins content to nothing. If Min > Max, Min wins.
func (a SizingAxis) clamp(v float32) float32 {
	if a.hasMax() && v > a.Max {
		v = a.Max
	}
	if v < a.Min {
		v = a.Min
	}
	return v
}

// isUnconstrainedGrow reports whether the axis grows with no bounds of its
// own. Containers whose children all satisfy this on both axes can be sized
// with a single even split instead of the general distribution pass.
func (a SizingAxis) isUnconstrainedGrow() bool {
	return a.Type == SizingGrow && a.Min == 0 && !a.hasMax()
}
