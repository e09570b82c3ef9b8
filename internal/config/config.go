package config

import (
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/dshills/keymark/internal/bookmark"
	"github.com/dshills/keymark/internal/logging"
	"github.com/dshills/keymark/internal/renderer/gutter"
)

// Config is the complete keymark configuration.
type Config struct {
	Log    LogConfig               `toml:"log" yaml:"log"`
	Gutter GutterConfig            `toml:"gutter" yaml:"gutter"`
	Kinds  map[string]KindOverride `toml:"kinds" yaml:"kinds"`
	Styles map[string]StyleSpec    `toml:"styles" yaml:"styles"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error, crit.
	Level string `toml:"level" yaml:"level"`
	// Format is one of logfmt, terminal, json.
	Format string `toml:"format" yaml:"format"`
}

// GutterConfig configures the sign column and line numbers.
type GutterConfig struct {
	ShowLineNumbers    bool `toml:"show_line_numbers" yaml:"show_line_numbers"`
	MinLineNumberWidth int  `toml:"min_line_number_width" yaml:"min_line_number_width"`
	ShowSigns          bool `toml:"show_signs" yaml:"show_signs"`
	SignColumnWidth    int  `toml:"sign_column_width" yaml:"sign_column_width"`
}

// KindOverride replaces some traits of one bookmark kind.
// Unset fields keep the built-in value.
type KindOverride struct {
	ZOrder    *int   `toml:"z_order" yaml:"z_order"`
	Visible   *bool  `toml:"visible" yaml:"visible"`
	CanToggle *bool  `toml:"can_toggle" yaml:"can_toggle"`
	Glyph     string `toml:"glyph" yaml:"glyph"`
}

// StyleSpec holds tcell colour names for one bookmark kind.
type StyleSpec struct {
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
	// Sign is the foreground colour of the gutter glyph.
	Sign string `toml:"sign" yaml:"sign"`
}

// Default returns the built-in configuration.
func Default() Config {
	g := gutter.DefaultConfig()
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: string(logging.FormatLogfmt),
		},
		Gutter: GutterConfig{
			ShowLineNumbers:    g.ShowLineNumbers,
			MinLineNumberWidth: g.MinLineNumberWidth,
			ShowSigns:          g.ShowSigns,
			SignColumnWidth:    g.SignColumnWidth,
		},
	}
}

var (
	logLevels  = []string{"debug", "info", "warn", "warning", "error", "crit"}
	logFormats = []string{string(logging.FormatLogfmt), string(logging.FormatTerminal), string(logging.FormatJSON)}
)

// Validate checks every setting and returns all problems found.
// The returned error is a *multierror.Error of *FieldError values, or nil.
func (c Config) Validate() error {
	var result *multierror.Error

	if !oneOf(c.Log.Level, logLevels) {
		result = multierror.Append(result, invalid("log.level", c.Log.Level))
	}
	if !oneOf(c.Log.Format, logFormats) {
		result = multierror.Append(result, invalid("log.format", c.Log.Format))
	}
	if w := c.Gutter.MinLineNumberWidth; w < 1 || w > 10 {
		result = multierror.Append(result, invalid("gutter.min_line_number_width", w))
	}
	if w := c.Gutter.SignColumnWidth; w < 0 || w > 4 {
		result = multierror.Append(result, invalid("gutter.sign_column_width", w))
	}

	for _, name := range slices.Sorted(maps.Keys(c.Kinds)) {
		field := "kinds." + name
		if _, ok := bookmark.ParseKind(name); !ok {
			result = multierror.Append(result, &FieldError{Field: field, Value: name, Err: ErrUnknownKind})
			continue
		}
		o := c.Kinds[name]
		if o.Glyph != "" && utf8.RuneCountInString(o.Glyph) != 1 {
			result = multierror.Append(result, invalid(field+".glyph", o.Glyph))
		}
		if o.ZOrder != nil && *o.ZOrder < 0 {
			result = multierror.Append(result, invalid(field+".z_order", *o.ZOrder))
		}
	}

	for _, name := range slices.Sorted(maps.Keys(c.Styles)) {
		field := "styles." + name
		if _, ok := bookmark.ParseKind(name); !ok {
			result = multierror.Append(result, &FieldError{Field: field, Value: name, Err: ErrUnknownKind})
			continue
		}
		s := c.Styles[name]
		for _, color := range []struct{ key, value string }{
			{"foreground", s.Foreground},
			{"background", s.Background},
			{"sign", s.Sign},
		} {
			if color.value != "" && !validColor(color.value) {
				result = multierror.Append(result, invalid(field+"."+color.key, color.value))
			}
		}
	}

	return result.ErrorOrNil()
}

// Traits returns the bookmark traits with the configured overrides applied.
func (c Config) Traits() bookmark.TraitsTable {
	table := bookmark.TraitsTable{}
	for name, o := range c.Kinds {
		k, ok := bookmark.ParseKind(name)
		if !ok {
			continue
		}
		t := bookmark.DefaultTraits(k)
		if o.ZOrder != nil {
			t.ZOrder = *o.ZOrder
		}
		if o.Visible != nil {
			t.Visible = *o.Visible
		}
		if o.CanToggle != nil {
			t.CanToggle = *o.CanToggle
		}
		if r, _ := utf8.DecodeRuneInString(o.Glyph); o.Glyph != "" && r != utf8.RuneError {
			t.Image = bookmark.Image{Name: k.String(), Glyph: r}
		}
		table[k] = t
	}
	return table
}

// GutterOptions converts the gutter section for the gutter package.
func (c Config) GutterOptions() gutter.Config {
	return gutter.Config{
		ShowLineNumbers:    c.Gutter.ShowLineNumbers,
		MinLineNumberWidth: c.Gutter.MinLineNumberWidth,
		ShowSigns:          c.Gutter.ShowSigns,
		SignColumnWidth:    c.Gutter.SignColumnWidth,
	}
}

// LoggingOptions converts the log section for the logging package.
// Output is left nil so the logger writes to stderr.
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{
		Level:  c.Log.Level,
		Format: logging.Format(c.Log.Format),
	}
}

func invalid(field string, value any) *FieldError {
	return &FieldError{Field: field, Value: value, Err: ErrInvalidValue}
}

func oneOf(s string, allowed []string) bool {
	s = strings.ToLower(s)
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// validColor accepts tcell colour names and #rrggbb values.
func validColor(name string) bool {
	if strings.EqualFold(name, "default") {
		return true
	}
	return tcell.GetColor(name) != tcell.ColorDefault
}
