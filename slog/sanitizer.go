package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doctidy"
)

// Ensure Sanitizer implements doctidy.Sanitizer.
var _ doctidy.Sanitizer = (*Sanitizer)(nil)

// Sanitizer wraps a doctidy.Sanitizer with debug logging of per-document
// outcomes and timing.
type Sanitizer struct {
	next   doctidy.Sanitizer
	logger *slog.Logger
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer(next doctidy.Sanitizer, logger *slog.Logger) *Sanitizer {
	return &Sanitizer{next: next, logger: logger}
}

// Sanitize delegates to the wrapped sanitizer and logs the outcome.
func (s *Sanitizer) Sanitize(rawHTML string, fallbackTitle string) (string, error) {
	begin := time.Now()
	out, err := s.next.Sanitize(rawHTML, fallbackTitle)
	if err != nil {
		level := slog.LevelError
		if doctidy.ErrorCode(err) == doctidy.ENOTFOUND {
			level = slog.LevelWarn
		}
		s.logger.Log(context.Background(), level, "sanitize",
			"document", fallbackTitle,
			"error", doctidy.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	s.logger.Debug("sanitize",
		"document", fallbackTitle,
		"bytes_in", len(rawHTML),
		"bytes_out", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}
