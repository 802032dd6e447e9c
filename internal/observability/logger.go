// Package observability builds the structured logger shared by the CLI.
package observability

import (
	"io"
	"log/slog"

	"pledgeviz/internal/config"
)

// NewLogger builds a slog.Logger writing to w with the configured level and format.
// Callers pass os.Stderr so stdout stays clean for table and data output.
func NewLogger(w io.Writer, cfg config.LoggingConfig) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.JSON() {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler), nil
}
