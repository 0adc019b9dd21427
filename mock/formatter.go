package mock

import "github.com/fwojciec/doctidy"

var _ doctidy.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of doctidy.Formatter.
type Formatter struct {
	FormatFn func(html string) string
}

func (f *Formatter) Format(html string) string {
	return f.FormatFn(html)
}
