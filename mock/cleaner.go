package mock

import (
	"context"

	"github.com/fwojciec/doctidy"
)

var _ doctidy.DirectoryCleaner = (*DirectoryCleaner)(nil)

// DirectoryCleaner is a mock implementation of doctidy.DirectoryCleaner.
type DirectoryCleaner struct {
	CleanAllFn func(ctx context.Context, root string, progress doctidy.CleanProgressFunc) (*doctidy.Result, error)
}

func (c *DirectoryCleaner) CleanAll(ctx context.Context, root string, progress doctidy.CleanProgressFunc) (*doctidy.Result, error) {
	return c.CleanAllFn(ctx, root, progress)
}
