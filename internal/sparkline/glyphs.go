package sparkline

import "math"

// Glyphs is the block alphabet ordered by fill level. Index 0 is blank,
// index 8 is a full block.
var Glyphs = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// glyphLevels is the number of fill levels a single row can show above blank.
const glyphLevels = len(Glyphs) - 1

// rowSpan is the height of one row in level units.
const rowSpan = len(Glyphs)

// Sample is one data point. A sample that is not Present renders blank.
type Sample struct {
	Value   float64
	Present bool
}

// Value returns a present sample.
func Value(v float64) Sample {
	return Sample{Value: v, Present: true}
}

// Missing returns a gap.
func Missing() Sample {
	return Sample{}
}

// Values converts plain numbers to samples. NaN becomes a gap.
func Values(vs ...float64) []Sample {
	out := make([]Sample, len(vs))
	for i, v := range vs {
		if math.IsNaN(v) {
			out[i] = Missing()
			continue
		}
		out[i] = Value(v)
	}
	return out
}

// Level is a scaled sample height in glyph fill units across all rows.
type Level int

// NoLevel marks a missing sample in scaled output.
const NoLevel Level = -1

// MaxLevel returns the highest level representable with the given row count.
func MaxLevel(lines int) Level {
	return Level(rowSpan*lines - 1)
}
