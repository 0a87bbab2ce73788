package sparkline

import (
	"fmt"
	"math"
)

// Bounds optionally pins the value range. A nil field is inferred from the
// present samples.
type Bounds struct {
	Min *float64
	Max *float64
}

// Bound returns a pointer to v for use in Bounds.
func Bound(v float64) *float64 {
	return &v
}

// resolve returns the effective range for samples.
func (b Bounds) resolve(samples []Sample) (lo, hi float64, err error) {
	seen := false
	for _, s := range samples {
		if !s.Present {
			continue
		}
		if !seen {
			lo, hi = s.Value, s.Value
			seen = true
			continue
		}
		lo = math.Min(lo, s.Value)
		hi = math.Max(hi, s.Value)
	}

	if (b.Min == nil || b.Max == nil) && !seen {
		return 0, 0, ErrNoData
	}
	if b.Min != nil {
		lo = *b.Min
	}
	if b.Max != nil {
		hi = *b.Max
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: %g > %g", ErrInvalidRange, lo, hi)
	}
	return lo, hi, nil
}

// Scale maps samples onto discrete levels in [0, 9*lines-1]. Missing samples
// map to NoLevel. Every present sample gets at least level 1 so it stays
// visible next to a gap.
func Scale(samples []Sample, lines int, bounds Bounds) ([]Level, error) {
	if lines <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLines, lines)
	}

	out := make([]Level, len(samples))
	for i := range out {
		out[i] = NoLevel
	}
	if len(samples) == 0 {
		return out, nil
	}

	lo, hi, err := bounds.resolve(samples)
	if err != nil {
		return nil, err
	}

	dv := hi - lo
	if dv == 0 {
		mid := Level(glyphLevels / 2 * lines)
		for i, s := range samples {
			if s.Present {
				out[i] = mid
			}
		}
		return out, nil
	}

	// First stage: [lo, hi] onto [1, 8].
	heights := make([]float64, len(samples))
	first := math.Inf(1)
	for i, s := range samples {
		if !s.Present {
			continue
		}
		x := math.Max(math.Min(s.Value, hi), lo)
		heights[i] = float64(glyphLevels-1)/dv*x + (hi-lo*float64(glyphLevels))/dv
		first = math.Min(first, heights[i])
	}

	// Second stage spreads the heights over the extra rows. The line passes
	// through (first, first) and (hi, lines*hi) and keeps the legacy
	// intercept so multi-row output stays pixel-identical. It is skipped
	// when its slope is undefined or not positive.
	if lines > 1 && !math.IsInf(first, 1) && hi != first {
		y2 := float64(lines) * hi
		if slope := (y2 - first) / (hi - first); slope > 0 {
			for i, s := range samples {
				if s.Present {
					heights[i] = rescale(first, first, hi, y2, heights[i])
				}
			}
		}
	}

	top := MaxLevel(lines)
	for i, s := range samples {
		if !s.Present {
			continue
		}
		l := Level(math.RoundToEven(heights[i]))
		l = max(0, min(l, top))
		if l == 0 {
			l = 1
		}
		out[i] = l
	}
	return out, nil
}

// rescale evaluates the line through (x1, y1) and (x2, y2) at x, using the
// historical intercept term x2*y1 - x1 - y2.
func rescale(x1, y1, x2, y2, x float64) float64 {
	return (y2-y1)/(x2-x1)*x + (x2*y1-x1-y2)/(x2-x1)
}
