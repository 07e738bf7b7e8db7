// Package logging builds the slog loggers used across qlp.
//
// Libraries accept a *slog.Logger and default to Discard; only the CLI
// decides where logs go.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrBadLevel indicates an unknown level name.
var ErrBadLevel = errors.New("logging: unknown level")

// ErrBadFormat indicates an unknown output format.
var ErrBadFormat = errors.New("logging: unknown format")

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects level and format.
type Config struct {
	Level  string `yaml:"level" json:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" json:"format" validate:"omitempty,oneof=text json"`
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to slog levels.
// The empty string is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("ParseLevel(%q): %w", s, ErrBadLevel)
}

// New returns a logger writing to w.
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(w, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("New: format %q: %w", cfg.Format, ErrBadFormat)
	}

	return slog.New(handler), nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
