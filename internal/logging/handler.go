package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Supported values for Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options controls how New builds a logger.
type Options struct {
	// Format is FormatText or FormatJSON. Empty means FormatText.
	Format string

	// Debug lowers the level to slog.LevelDebug.
	Debug bool

	// Writer receives log output. Defaults to os.Stderr, which keeps
	// stdout free for the stdio transport.
	Writer io.Writer
}

// New returns a slog.Logger for the given options.
func New(opts Options) (*slog.Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (want %q or %q)", opts.Format, FormatText, FormatJSON)
	}
}
