// Package lru provides an in-memory cache for gist fetches.
package lru

import (
	"context"
	"fmt"

	"github.com/fwojciec/gistview"
	lrulib "github.com/hashicorp/golang-lru/v2"
)

// Compile-time interface verification.
var _ gistview.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher with an in-memory LRU cache keyed by gist ID.
// Only successful fetches are cached.
type Fetcher struct {
	inner gistview.Fetcher
	cache *lrulib.Cache[string, *gistview.Gist]
}

// NewFetcher creates a caching fetcher holding at most size gists.
func NewFetcher(inner gistview.Fetcher, size int) (*Fetcher, error) {
	cache, err := lrulib.New[string, *gistview.Gist](size)
	if err != nil {
		return nil, fmt.Errorf("lru: %w", err)
	}
	return &Fetcher{inner: inner, cache: cache}, nil
}

// Fetch returns a cached gist or delegates to the inner fetcher.
func (f *Fetcher) Fetch(ctx context.Context, id string) (*gistview.Gist, error) {
	if g, ok := f.cache.Get(id); ok {
		return g, nil
	}

	g, err := f.inner.Fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	f.cache.Add(id, g)
	return g, nil
}

// Len returns the number of cached gists.
func (f *Fetcher) Len() int {
	return f.cache.Len()
}

// Purge empties the cache.
func (f *Fetcher) Purge() {
	f.cache.Purge()
}
