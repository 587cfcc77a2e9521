package mock

import (
	"context"

	"github.com/fwojciec/gistview"
)

// Compile-time interface verification.
var _ gistview.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of gistview.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, gistURL string) error
}

func (v *Viewer) View(ctx context.Context, gistURL string) error {
	return v.ViewFn(ctx, gistURL)
}
