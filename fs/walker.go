// Package fs provides filesystem-based batch cleaning of documentation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/doctidy"
)

// htmlSuffix filters the files processed by the walker. Matched
// case-sensitively at any depth under the root.
const htmlSuffix = ".html"

// Ensure Walker implements doctidy.DirectoryCleaner at compile time.
var _ doctidy.DirectoryCleaner = (*Walker)(nil)

// Walker sanitizes every HTML file under a root directory, rewriting
// each file in place. Files are processed serially; all per-file
// errors are contained so a single bad file never aborts the batch.
type Walker struct {
	Sanitizer doctidy.Sanitizer
}

// NewWalker creates a new Walker using the given sanitizer.
func NewWalker(sanitizer doctidy.Sanitizer) *Walker {
	return &Walker{Sanitizer: sanitizer}
}

// CleanAll processes all .html files under root.
func (w *Walker) CleanAll(ctx context.Context, root string, progress doctidy.CleanProgressFunc) (*doctidy.Result, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, doctidy.Errorf(doctidy.ENOTFOUND, "directory %q does not exist", root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, doctidy.Errorf(doctidy.EINVALID, "%q is not a directory", root)
	}

	// Collect all paths up front so the walk never observes our own
	// writes and the progress callback can report a stable total.
	paths, err := collectHTMLFiles(root)
	if err != nil {
		return nil, err
	}

	var result doctidy.Result
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return &result, err
		}

		err := w.cleanFile(path, &result)
		if progress != nil {
			progress(doctidy.CleanProgress{
				Path:      path,
				Completed: i + 1,
				Total:     len(paths),
				Err:       err,
			})
		}
	}

	return &result, nil
}

// cleanFile reads, sanitizes, and rewrites a single file, updating the
// result counters. The returned error is for progress reporting only.
func (w *Walker) cleanFile(path string, result *doctidy.Result) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		result.Failed++
		return err
	}

	out, err := w.Sanitizer.Sanitize(string(raw), filepath.Base(path))
	if err != nil {
		if doctidy.ErrorCode(err) == doctidy.ENOTFOUND {
			result.Skipped++
		} else {
			result.Failed++
		}
		return err
	}

	// Skip the write when the output is byte-identical; makes reruns
	// over already-clean trees no-ops on disk.
	if xxhash.Sum64String(out) == xxhash.Sum64(raw) {
		result.Unchanged++
		return nil
	}

	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		result.Failed++
		return err
	}

	result.Cleaned++
	return nil
}

// collectHTMLFiles returns the paths of all .html files under root.
// Unreadable entries are skipped rather than aborting the walk; only
// the missing root is fatal, checked before enumeration starts.
func collectHTMLFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), htmlSuffix) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
