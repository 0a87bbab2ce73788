package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bamsammich/spark/internal/color"
	"github.com/bamsammich/spark/internal/config"
	"github.com/bamsammich/spark/internal/input"
	"github.com/bamsammich/spark/internal/sparkline"
	"github.com/bamsammich/spark/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// ruleFlag is a custom pflag.Value that keeps --emphasize rules in CLI
// order and rejects malformed rules as soon as they are parsed.
type ruleFlag struct {
	rules *[]sparkline.Rule
}

func (f *ruleFlag) String() string {
	if f.rules == nil {
		return ""
	}
	parts := make([]string, len(*f.rules))
	for i, r := range *f.rules {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}

func (*ruleFlag) Type() string { return "rule" }

func (f *ruleFlag) Set(val string) error {
	r, err := sparkline.ParseRule(val)
	if err != nil {
		return err
	}
	*f.rules = append(*f.rules, r)
	return nil
}

// options collects the root command's flag values.
type options struct {
	lines       int
	wrap        int
	minVal      float64
	maxVal      float64
	rules       []sparkline.Rule
	colorMode   string
	fit         bool
	verbose     bool
	quiet       bool
	logFile     string
	showVersion bool
}

func run(args []string) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "spark [flags] [VALUE...]",
		Short: "Draw sparklines like ▃▁▄▁▄█▂▅ from numbers on the command line or stdin",
		Long: `spark renders numbers as a row of Unicode block characters.

Values are read from the arguments, or from stdin when no arguments are
given. Use none, null, nan, na or _ for a missing value; it renders as a
blank column.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "spark %s\n", version)
				return nil
			}
			return runRender(cmd, args, &opts)
		},
	}

	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "print version and exit")
	rootCmd.Flags().IntVarP(&opts.lines, "lines", "n", 1, "number of rows per sparkline")
	rootCmd.Flags().
		VarP(&ruleFlag{rules: &opts.rules}, "emphasize", "e", "color samples matching COLOR:eq|gt|ge|lt|le:VALUE (repeatable, first match wins)")
	rootCmd.Flags().Float64Var(&opts.minVal, "min", 0, "lower bound; smaller values are clamped (default: data minimum)")
	rootCmd.Flags().Float64Var(&opts.maxVal, "max", 0, "upper bound; larger values are clamped (default: data maximum)")
	rootCmd.Flags().IntVarP(&opts.wrap, "wrap", "w", 0, "split into blocks of N samples separated by a blank column")
	rootCmd.Flags().BoolVar(&opts.fit, "fit", false, "keep only the most recent samples that fit the terminal width")
	rootCmd.Flags().StringVar(&opts.colorMode, "color", "auto", "when to color emphasized samples (auto, always, never)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings")
	rootCmd.Flags().StringVar(&opts.logFile, "log", "", "write structured JSON log to FILE")

	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

func runRender(cmd *cobra.Command, args []string, opts *options) error {
	// Logging flags never come from the config file, so the logger can be
	// installed before the config is read and report its problems.
	closeLog, err := setupLogging(cmd.ErrOrStderr(), opts)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config", "path", config.ConfigPath(), "error", err)
	}
	if err := applyConfigDefaults(cmd, cfg.Defaults, opts); err != nil {
		return fmt.Errorf("config %s: %w", config.ConfigPath(), err)
	}

	samples, err := readSamples(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	mode, err := color.ParseMode(opts.colorMode)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	colorizer := color.New(out, color.WithMode(mode), color.WithTheme(cfg.Theme))

	var bounds sparkline.Bounds
	if cmd.Flags().Changed("min") || cfg.Defaults.Min != nil {
		bounds.Min = sparkline.Bound(opts.minVal)
	}
	if cmd.Flags().Changed("max") || cfg.Defaults.Max != nil {
		bounds.Max = sparkline.Bound(opts.maxVal)
	}

	if opts.fit {
		if f, ok := out.(*os.File); ok && ui.IsTTY(f.Fd()) {
			samples = fitTail(samples, ui.Width(f.Fd(), 80), opts.wrap)
		}
	}

	slog.Debug("rendering",
		"samples", len(samples),
		"lines", opts.lines,
		"wrap", opts.wrap,
		"rules", len(opts.rules),
		"color", mode.String(),
		"color_available", colorizer.Available(),
	)

	rows, err := sparkline.Render(samples, opts.lines, sparkline.Options{
		Bounds:    bounds,
		Rules:     opts.rules,
		Wrap:      opts.wrap,
		Colorizer: colorizer,
	})
	if errors.Is(err, sparkline.ErrNoData) {
		slog.Error("nothing to draw", "error", err)
		return &exitError{code: 1}
	}
	if err != nil {
		return err
	}
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	return nil
}

// readSamples takes values from args, or from in when args is empty.
func readSamples(in io.Reader, args []string) ([]sparkline.Sample, error) {
	if len(args) > 0 {
		return input.ParseArgs(args)
	}
	if f, ok := in.(*os.File); ok && ui.IsTTY(f.Fd()) {
		return nil, errors.New("no values given; pass numbers as arguments or pipe them on stdin")
	}
	return input.Read(in)
}

// setupLogging installs the default logger. The returned func closes the
// log file, if any.
func setupLogging(errW io.Writer, opts *options) (func(), error) {
	logLevel := slog.LevelWarn
	if opts.verbose {
		logLevel = slog.LevelDebug
	} else if opts.quiet {
		logLevel = slog.LevelError
	}
	textHandler := slog.NewTextHandler(errW, &slog.HandlerOptions{
		Level: logLevel,
	})
	var logHandler slog.Handler = textHandler
	closeFn := func() {}
	if opts.logFile != "" {
		lf, err := os.Create(opts.logFile)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		closeFn = func() { lf.Close() }
		jsonHandler := slog.NewJSONHandler(lf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		logHandler = ui.NewMultiHandler(textHandler, jsonHandler)
	}
	slog.SetDefault(slog.New(logHandler))
	return closeFn, nil
}

// fitTail keeps the most recent samples whose rendering fits in width columns.
func fitTail(samples []sparkline.Sample, width, wrap int) []sparkline.Sample {
	n := min(len(samples), width)
	for n > 0 && sparkline.Width(n, wrap) > width {
		n--
	}
	return samples[len(samples)-n:]
}

// applyConfigDefaults applies config file defaults for flags not explicitly set on the CLI.
func applyConfigDefaults(cmd *cobra.Command, defaults config.DefaultsConfig, opts *options) error {
	if !cmd.Flags().Changed("lines") && defaults.Lines != nil {
		opts.lines = *defaults.Lines
	}
	if !cmd.Flags().Changed("wrap") && defaults.Wrap != nil {
		opts.wrap = *defaults.Wrap
	}
	if !cmd.Flags().Changed("min") && defaults.Min != nil {
		opts.minVal = *defaults.Min
	}
	if !cmd.Flags().Changed("max") && defaults.Max != nil {
		opts.maxVal = *defaults.Max
	}
	if !cmd.Flags().Changed("color") && defaults.Color != nil {
		opts.colorMode = *defaults.Color
	}
	if !cmd.Flags().Changed("emphasize") && len(defaults.Emphasize) > 0 {
		rules, err := sparkline.ParseRules(defaults.Emphasize)
		if err != nil {
			return err
		}
		opts.rules = rules
	}
	return nil
}

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

var _ pflag.Value = (*ruleFlag)(nil)
