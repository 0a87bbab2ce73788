package sparkline

import (
	"fmt"
	"strings"
)

// span is a half-open index range [start, end).
type span struct {
	start, end int
}

// batches splits n items into consecutive spans of at most wrap items.
// wrap <= 0 yields a single span.
func batches(n, wrap int) []span {
	if wrap <= 0 || wrap >= n {
		return []span{{0, n}}
	}
	out := make([]span, 0, (n+wrap-1)/wrap)
	for start := 0; start < n; start += wrap {
		out = append(out, span{start, min(start+wrap, n)})
	}
	return out
}

// assemble turns bottom-up columns of cells into rows, top row first.
func assemble(columns [][]string) ([]string, error) {
	if len(columns) == 0 {
		return nil, nil
	}
	height := len(columns[0])
	for i, col := range columns {
		if len(col) != height {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d",
				ErrAssembly, i, len(col), height)
		}
	}

	rows := make([]string, height)
	for r := range height {
		var b strings.Builder
		for _, col := range columns {
			b.WriteString(col[r])
		}
		rows[height-1-r] = b.String()
	}
	return rows, nil
}

// joinBlocks places blocks side by side with one blank column between
// neighbours.
func joinBlocks(blocks [][]string) []string {
	if len(blocks) == 0 {
		return nil
	}
	sep := string(Glyphs[0])
	rows := make([]string, len(blocks[0]))
	for r := range rows {
		parts := make([]string, len(blocks))
		for i, block := range blocks {
			parts[i] = block[r]
		}
		rows[r] = strings.Join(parts, sep)
	}
	return rows
}

// Width returns the rune width of a row holding n samples wrapped every
// wrap samples.
func Width(n, wrap int) int {
	if n <= 0 {
		return 0
	}
	if wrap <= 0 {
		return n
	}
	return n + (n-1)/wrap
}
