package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Log formats accepted by --log-format.
const (
	logFormatText = "text"
	logFormatJSON = "json"
)

var errBadLogSetting = errors.New("invalid log setting")

// newLogger builds the CLI logger writing to w. level uses slog's own
// names ("debug", "INFO", "warn+2"); format is text or json.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--%s %q: %w", keyLogLevel, level, errBadLogSetting)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch format {
	case logFormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case logFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("--%s %q: %w", keyLogFormat, format, errBadLogSetting)
	}
}
