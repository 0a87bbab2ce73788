// Package color implements the terminal color capability used to emphasize
// sparkline glyphs.
package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bamsammich/spark/internal/config"
)

// Mode selects when color is emitted.
type Mode int

const (
	// ModeAuto colors only when the output supports it and NO_COLOR is unset.
	ModeAuto Mode = iota
	ModeAlways
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses auto, always or never.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("invalid color mode %q (use auto, always or never)", s)
	}
}

// Palette maps rule color names to terminal colors. Names follow the
// classic eight ANSI colors.
func Palette() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"black":   lipgloss.Color("0"),
		"red":     lipgloss.Color("1"),
		"green":   lipgloss.Color("2"),
		"yellow":  lipgloss.Color("3"),
		"blue":    lipgloss.Color("4"),
		"magenta": lipgloss.Color("5"),
		"cyan":    lipgloss.Color("6"),
		"white":   lipgloss.Color("7"),
		"grey":    lipgloss.Color("8"),
		"gray":    lipgloss.Color("8"),
	}
}

// Option configures a Colorizer.
type Option func(*Colorizer)

// WithMode overrides automatic detection.
func WithMode(m Mode) Option {
	return func(c *Colorizer) { c.mode = m }
}

// WithTheme applies color overrides from the config file.
func WithTheme(tc config.ThemeConfig) Option {
	return func(c *Colorizer) {
		for name, v := range tc.Overrides() {
			c.palette[name] = lipgloss.Color(v)
		}
	}
}

// Colorizer styles glyphs for a single output stream. Whether color is
// available is decided once, at construction.
type Colorizer struct {
	renderer  *lipgloss.Renderer
	palette   map[string]lipgloss.Color
	mode      Mode
	available bool
	styles    map[string]lipgloss.Style
}

// New creates a Colorizer for w.
func New(w io.Writer, opts ...Option) *Colorizer {
	c := &Colorizer{
		renderer: lipgloss.NewRenderer(w),
		palette:  Palette(),
		styles:   make(map[string]lipgloss.Style),
	}
	for _, opt := range opts {
		opt(c)
	}

	switch c.mode {
	case ModeNever:
		c.renderer.SetColorProfile(termenv.Ascii)
	case ModeAlways:
		if c.renderer.ColorProfile() == termenv.Ascii {
			c.renderer.SetColorProfile(termenv.ANSI)
		}
	case ModeAuto:
		if termenv.EnvNoColor() {
			c.renderer.SetColorProfile(termenv.Ascii)
		}
	}
	c.available = c.renderer.ColorProfile() != termenv.Ascii
	return c
}

// Available reports whether Colorize emits escape sequences.
func (c *Colorizer) Available() bool {
	return c.available
}

// Profile returns the terminal color profile in effect.
func (c *Colorizer) Profile() termenv.Profile {
	return c.renderer.ColorProfile()
}

// Colorize wraps s in the named color. Unknown names are handed to lipgloss
// verbatim, so "#ff8800" and ANSI numbers work too.
func (c *Colorizer) Colorize(name, s string) string {
	if !c.available || name == "" {
		return s
	}
	style, ok := c.styles[name]
	if !ok {
		style = c.renderer.NewStyle().Foreground(c.resolve(name))
		c.styles[name] = style
	}
	return style.Render(s)
}

func (c *Colorizer) resolve(name string) lipgloss.Color {
	if col, ok := c.palette[strings.ToLower(name)]; ok {
		return col
	}
	return lipgloss.Color(name)
}
