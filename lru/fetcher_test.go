package lru_test

import (
	"context"
	"testing"

	"github.com/fwojciec/gistview"
	"github.com/fwojciec/gistview/lru"
	"github.com/fwojciec/gistview/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFetcher(calls *int, err error) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, id string) (*gistview.Gist, error) {
			*calls++
			if err != nil {
				return nil, err
			}
			return &gistview.Gist{ID: id}, nil
		},
	}
}

func TestFetcher_CachesSuccess(t *testing.T) {
	t.Parallel()

	var calls int
	f, err := lru.NewFetcher(countingFetcher(&calls, nil), 2)
	require.NoError(t, err)

	first, err := f.Fetch(context.Background(), "abc")
	require.NoError(t, err)
	second, err := f.Fetch(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
	assert.Equal(t, 1, f.Len())
}

func TestFetcher_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	var calls int
	f, err := lru.NewFetcher(countingFetcher(&calls, &gistview.Error{Kind: gistview.ErrNotFound}), 2)
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), "abc")
	assert.ErrorIs(t, err, &gistview.Error{Kind: gistview.ErrNotFound})
	_, err = f.Fetch(context.Background(), "abc")
	assert.Error(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, f.Len())
}

func TestFetcher_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	var calls int
	f, err := lru.NewFetcher(countingFetcher(&calls, nil), 2)
	require.NoError(t, err)
	ctx := context.Background()

	_, _ = f.Fetch(ctx, "a")
	_, _ = f.Fetch(ctx, "b")
	_, _ = f.Fetch(ctx, "a") // a is now most recent
	_, _ = f.Fetch(ctx, "c") // evicts b
	_, _ = f.Fetch(ctx, "a")
	_, _ = f.Fetch(ctx, "b")

	assert.Equal(t, 4, calls)
}

func TestFetcher_Purge(t *testing.T) {
	t.Parallel()

	var calls int
	f, err := lru.NewFetcher(countingFetcher(&calls, nil), 2)
	require.NoError(t, err)

	_, _ = f.Fetch(context.Background(), "a")
	f.Purge()
	_, _ = f.Fetch(context.Background(), "a")

	assert.Equal(t, 2, calls)
}

func TestNewFetcher_InvalidSize(t *testing.T) {
	t.Parallel()

	_, err := lru.NewFetcher(&mock.Fetcher{}, 0)

	assert.Error(t, err)
}
