package mock

import "github.com/fwojciec/doctidy"

var _ doctidy.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of doctidy.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(rawHTML string, fallbackTitle string) (string, error)
}

func (s *Sanitizer) Sanitize(rawHTML string, fallbackTitle string) (string, error) {
	return s.SanitizeFn(rawHTML, fallbackTitle)
}
