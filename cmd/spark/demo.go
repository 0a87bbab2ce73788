package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bamsammich/spark/internal/input"
	"github.com/bamsammich/spark/internal/sparkline"
)

var demoValues = []float64{3, 1, 4, 1, 5, 9, 2, 6}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo [VALUE...]",
		Short: "Print usage examples",
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := sparkline.Values(demoValues...)
			if len(args) > 0 {
				var err error
				samples, err = input.ParseArgs(args)
				if err != nil {
					return err
				}
			}
			return writeDemo(cmd.OutOrStdout(), cmd.Root().Name(), samples)
		},
	}
}

// writeDemo prints single and multi-line renderings of samples, followed by
// the same data mirrored around a gap.
func writeDemo(w io.Writer, prog string, samples []sparkline.Sample) error {
	fmt.Fprintln(w, "Usage examples:")
	fmt.Fprintln(w)

	sections := []struct {
		title string
		flags string
		lines int
		data  []sparkline.Sample
	}{
		{"Standard one-line sparkline", "", 1, samples},
		{"Multi-line sparkline (n=2)", "-n 2 ", 2, samples},
		{"Multi-line sparkline (n=3)", "-n 3 ", 3, samples},
		{"Standard one-line sparkline with gap", "", 1, mirrored(samples)},
	}
	for _, s := range sections {
		rows, err := sparkline.Render(s.data, s.lines, sparkline.Options{})
		if err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
		fmt.Fprintf(w, "- %s\n", s.title)
		fmt.Fprintf(w, "%s %s%s\n", prog, s.flags, formatSamples(s.data))
		for _, row := range rows {
			fmt.Fprintln(w, row)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// mirrored returns samples, a gap, then samples reversed.
func mirrored(samples []sparkline.Sample) []sparkline.Sample {
	rev := slices.Clone(samples)
	slices.Reverse(rev)
	out := make([]sparkline.Sample, 0, 2*len(samples)+1)
	out = append(out, samples...)
	out = append(out, sparkline.Missing())
	return append(out, rev...)
}

func formatSamples(samples []sparkline.Sample) string {
	parts := make([]string, len(samples))
	for i, s := range samples {
		if !s.Present {
			parts[i] = "none"
			continue
		}
		parts[i] = strconv.FormatFloat(s.Value, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
