// Package mock provides test doubles for gistview interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/gistview"
)

// Compile-time interface verification.
var (
	_ gistview.Fetcher = (*Fetcher)(nil)
	_ gistview.Lister  = (*Lister)(nil)
)

// Fetcher is a mock implementation of gistview.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, id string) (*gistview.Gist, error)
}

func (f *Fetcher) Fetch(ctx context.Context, id string) (*gistview.Gist, error) {
	return f.FetchFn(ctx, id)
}

// Lister is a mock implementation of gistview.Lister.
type Lister struct {
	ListFn func(ctx context.Context, user string) ([]gistview.GistSummary, error)
}

func (l *Lister) List(ctx context.Context, user string) ([]gistview.GistSummary, error) {
	return l.ListFn(ctx, user)
}
