package sparkline

// Column returns the glyphs for one sample, bottom row first.
func Column(level Level, lines int) []rune {
	col := make([]rune, lines)
	for i := range col {
		if level == NoLevel {
			col[i] = Glyphs[0]
			continue
		}
		fill := int(level) - rowSpan*i
		col[i] = Glyphs[max(0, min(fill, glyphLevels))]
	}
	return col
}
