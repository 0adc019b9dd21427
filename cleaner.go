package doctidy

import "context"

// Result summarizes a batch cleaning run.
type Result struct {
	// Cleaned is the number of files rewritten in place.
	Cleaned int

	// Unchanged is the number of files whose sanitized output was
	// byte-identical to the input; these are not rewritten.
	Unchanged int

	// Skipped is the number of files with no matching content
	// container; these are left untouched.
	Skipped int

	// Failed is the number of files that could not be read, sanitized,
	// or written.
	Failed int
}

// Total returns the number of files attempted.
func (r *Result) Total() int {
	return r.Cleaned + r.Unchanged + r.Skipped + r.Failed
}

// CleanProgress reports progress as files are processed.
type CleanProgress struct {
	Path      string
	Completed int
	Total     int
	Err       error
}

// CleanProgressFunc is called once per file attempted.
type CleanProgressFunc func(CleanProgress)

// DirectoryCleaner sanitizes every HTML file under a root directory,
// rewriting each file in place. Implementations hide file enumeration,
// I/O, and per-file error containment: a single bad file must not
// abort the batch.
type DirectoryCleaner interface {
	// CleanAll processes all .html files under root. It returns
	// ENOTFOUND if root does not exist; per-file errors are reported
	// through progress and counted in the Result, never returned.
	CleanAll(ctx context.Context, root string, progress CleanProgressFunc) (*Result, error)
}
