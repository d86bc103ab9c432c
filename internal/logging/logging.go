// Package logging configures the process-wide slog logger of the typedtable
// command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the slog handler.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

var formatNames = []string{"text", "json"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses "text" or "json".
func ParseFormat(s string) (Format, error) {
	for i, name := range formatNames {
		if name == s {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown log format %q (want text|json)", s)
}

// Setup installs a logger writing records in format f to w, stderr when w
// is nil. Debug records are kept only when debug is set.
func Setup(debug bool, w io.Writer, f Format) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch f {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
