// Package logging builds the log15 loggers used across keymark.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/inconshreveable/log15"
)

// Format selects the log line format.
type Format string

const (
	// FormatLogfmt writes key=value lines.
	FormatLogfmt Format = "logfmt"
	// FormatTerminal writes colourised lines for interactive use.
	FormatTerminal Format = "terminal"
	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Options configures a logger.
type Options struct {
	// Level is the minimum level to output (debug, info, warn, error, crit).
	Level string
	// Format is the line format. Defaults to FormatLogfmt.
	Format Format
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
}

// DefaultOptions returns the default logger configuration.
func DefaultOptions() Options {
	return Options{
		Level:  "info",
		Format: FormatLogfmt,
		Output: os.Stderr,
	}
}

// ParseLevel parses a level name. Unknown names map to info.
func ParseLevel(s string) log15.Lvl {
	switch strings.ToLower(s) {
	case "warning":
		return log15.LvlWarn
	case "":
		return log15.LvlInfo
	}
	lvl, err := log15.LvlFromString(strings.ToLower(s))
	if err != nil {
		return log15.LvlInfo
	}
	return lvl
}

// New creates a logger with the given options and context pairs.
func New(opts Options, ctx ...interface{}) log15.Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	var format log15.Format
	switch opts.Format {
	case FormatTerminal:
		format = log15.TerminalFormat()
	case FormatJSON:
		format = log15.JsonFormat()
	default:
		format = log15.LogfmtFormat()
	}

	l := log15.New(ctx...)
	l.SetHandler(log15.LvlFilterHandler(ParseLevel(opts.Level), log15.StreamHandler(opts.Output, format)))
	return l
}

// Discard returns a logger that drops everything.
func Discard() log15.Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}
