// Package logging builds the console logger shared by the pipeline stages.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Log output formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Formats returns the accepted log formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatLogfmt}
}

// New returns a logger writing to w in the given format at the given level
// ("debug", "info", "warn", "error"). Empty values mean text and info.
func New(w io.Writer, format, level string) (*log.Logger, error) {
	formatter, err := parseFormat(format)
	if err != nil {
		return nil, err
	}

	lvl := log.InfoLevel
	if level != "" {
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", level, err)
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:     lvl,
		Formatter: formatter,
	}), nil
}

func parseFormat(format string) (log.Formatter, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return log.TextFormatter, nil
	case FormatJSON:
		return log.JSONFormatter, nil
	case FormatLogfmt:
		return log.LogfmtFormatter, nil
	default:
		return 0, fmt.Errorf("unknown log format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}
