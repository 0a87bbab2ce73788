package sparkline

import (
	"context"
	"fmt"
	"log/slog"
)

// Colorizer styles text with a named color. Coloring is skipped entirely
// when Available reports false.
type Colorizer interface {
	Available() bool
	Colorize(color, s string) string
}

// Options configures Render.
type Options struct {
	Bounds Bounds

	// Rules color columns by sample value. First match wins.
	Rules []Rule

	// Wrap splits the output into blocks of at most Wrap samples joined by
	// a blank column. Zero disables wrapping.
	Wrap int

	// Colorizer is optional; without it output is plain text.
	Colorizer Colorizer

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) painting() bool {
	return len(o.Rules) > 0 && o.Colorizer != nil && o.Colorizer.Available()
}

// Render returns one string per row, top row first, all of the same rune
// length. An empty input renders as a single empty string.
func Render(samples []Sample, lines int, opts Options) ([]string, error) {
	if lines <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLines, lines)
	}
	if len(samples) == 0 {
		return []string{""}, nil
	}

	warnNegatives(opts.logger(), samples)

	levels, err := Scale(samples, lines, opts.Bounds)
	if err != nil {
		return nil, err
	}

	paint := opts.painting()
	spans := batches(len(samples), opts.Wrap)
	blocks := make([][]string, 0, len(spans))
	for _, sp := range spans {
		columns := make([][]string, 0, sp.end-sp.start)
		for i := sp.start; i < sp.end; i++ {
			color := ""
			if paint && samples[i].Present {
				color = ColorFor(opts.Rules, samples[i].Value)
			}
			columns = append(columns, cells(Column(levels[i], lines), color, opts.Colorizer))
		}
		rows, err := assemble(columns)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, rows)
	}
	return joinBlocks(blocks), nil
}

// cells converts a column to strings, wrapping each glyph on its own so
// terminal styling never spans rows.
func cells(col []rune, color string, c Colorizer) []string {
	out := make([]string, len(col))
	for i, g := range col {
		out[i] = string(g)
		if color != "" {
			out[i] = c.Colorize(color, out[i])
		}
	}
	return out
}

func warnNegatives(logger *slog.Logger, samples []Sample) {
	var negatives []float64
	for _, s := range samples {
		if s.Present && s.Value < 0 {
			negatives = append(negatives, s.Value)
		}
	}
	if len(negatives) == 0 {
		return
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn,
		"found negative values; output will look unexpected",
		slog.Any("values", negatives),
	)
}
