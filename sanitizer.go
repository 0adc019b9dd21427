package doctidy

// Sanitizer rewrites a raw documentation page as a minimal standalone
// HTML document containing only its primary content.
type Sanitizer interface {
	// Sanitize processes raw HTML and returns the sanitized document.
	// fallbackTitle is used when the original document has no <title>
	// text; conventionally the file's base name.
	//
	// Returns EINVALID if the input cannot be parsed and ENOTFOUND if
	// no known content container matched. ENOTFOUND is non-fatal:
	// callers are expected to skip the file and leave it unmodified.
	Sanitize(rawHTML string, fallbackTitle string) (string, error)
}

// Formatter renders HTML text with human-readable indentation.
type Formatter interface {
	Format(html string) string
}
