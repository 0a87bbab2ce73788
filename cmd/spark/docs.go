package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docFormats maps --format values to cobra/doc tree generators.
var docFormats = map[string]func(root *cobra.Command, dir string) error{
	"man": func(root *cobra.Command, dir string) error {
		return doc.GenManTree(root, &doc.GenManHeader{
			Title:   "SPARK",
			Section: "1",
			Source:  "spark " + version,
			Manual:  "Sparkline Manual",
		}, dir)
	},
	"markdown": doc.GenMarkdownTree,
	"rest":     doc.GenReSTTree,
	"yaml":     doc.GenYamlTree,
}

func newDocsCmd() *cobra.Command {
	var dir, format string

	docsCmd := &cobra.Command{
		Use:    "gen-docs",
		Short:  "Write reference pages for spark and its subcommands",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, ok := docFormats[format]
			if !ok {
				return fmt.Errorf("unknown format %q (use %s)", format, strings.Join(formatNames(), ", "))
			}
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			root := cmd.Root()
			root.DisableAutoGenTag = true
			if err := gen(root, dir); err != nil {
				return fmt.Errorf("generate %s docs: %w", format, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s docs to %s\n", format, dir)
			return nil
		},
	}
	docsCmd.Flags().StringVar(&dir, "dir", "docs", "output directory")
	docsCmd.Flags().StringVar(&format, "format", "man", "output format ("+strings.Join(formatNames(), ", ")+")")
	return docsCmd
}

func formatNames() []string {
	names := make([]string, 0, len(docFormats))
	for name := range docFormats {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
