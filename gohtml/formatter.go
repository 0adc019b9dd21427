package gohtml

import (
	"github.com/fwojciec/doctidy"
	"github.com/yosssi/gohtml"
)

// Ensure Formatter implements doctidy.Formatter at compile time.
var _ doctidy.Formatter = (*Formatter)(nil)

// Formatter wraps gohtml to pretty-print HTML with indentation.
type Formatter struct{}

// NewFormatter creates a new Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders HTML text with human-readable indentation.
func (f *Formatter) Format(html string) string {
	return gohtml.Format(html)
}
