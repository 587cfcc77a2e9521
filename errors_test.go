package gistview_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/fwojciec/gistview"
	"github.com/stretchr/testify/assert"
)

func TestError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *gistview.Error
		expected string
	}{
		{"invalid URL", &gistview.Error{Kind: gistview.ErrInvalidURL}, "Invalid Gist URL"},
		{"not found", &gistview.Error{Kind: gistview.ErrNotFound, Status: 404}, "Gist not found. Please check the URL."},
		{"rate limited", &gistview.Error{Kind: gistview.ErrRateLimited, Status: 403}, "Rate limit exceeded. Please try again later."},
		{"network", &gistview.Error{Kind: gistview.ErrNetwork}, "Network error. Please check your internet connection and try again."},
		{"empty gist", &gistview.Error{Kind: gistview.ErrEmptyGist}, "No files found in this gist"},
		{"fetch failed with status", &gistview.Error{Kind: gistview.ErrFetchFailed, Status: 500}, "Failed to fetch gist (500)"},
		{"fetch failed with cause", &gistview.Error{Kind: gistview.ErrFetchFailed, Err: errors.New("boom")}, "boom"},
		{"fetch failed without detail", &gistview.Error{Kind: gistview.ErrFetchFailed}, "Failed to load gist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading: %w", &gistview.Error{Kind: gistview.ErrNotFound})

	assert.ErrorIs(t, err, &gistview.Error{Kind: gistview.ErrNotFound})
	assert.NotErrorIs(t, err, &gistview.Error{Kind: gistview.ErrRateLimited})
	assert.Equal(t, gistview.ErrNotFound, gistview.KindOf(err))
	assert.Equal(t, gistview.ErrFetchFailed, gistview.KindOf(errors.New("other")))
}

func TestStatusError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		kind   gistview.ErrorKind
	}{
		{404, gistview.ErrNotFound},
		{403, gistview.ErrRateLimited},
		{500, gistview.ErrFetchFailed},
		{401, gistview.ErrFetchFailed},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			t.Parallel()

			err := gistview.StatusError(tt.status, nil)

			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, gistview.Classify(nil))
	})

	t.Run("cancellation passes through", func(t *testing.T) {
		t.Parallel()

		err := gistview.Classify(context.Canceled)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, context.Canceled, err)
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		t.Parallel()

		in := &gistview.Error{Kind: gistview.ErrRateLimited}

		assert.Same(t, in, gistview.Classify(in))
	})

	t.Run("transport errors are network errors", func(t *testing.T) {
		t.Parallel()

		in := &url.Error{Op: "Get", URL: "https://api.github.com/gists/x", Err: errors.New("connection refused")}

		err := gistview.Classify(in)

		assert.Equal(t, gistview.ErrNetwork, gistview.KindOf(err))
		assert.Equal(t, gistview.MsgNetwork, err.Error())
		assert.ErrorIs(t, err, in)
	})

	t.Run("net errors are network errors", func(t *testing.T) {
		t.Parallel()

		in := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route to host")}

		assert.Equal(t, gistview.ErrNetwork, gistview.KindOf(gistview.Classify(in)))
	})

	t.Run("unknown errors keep their own text", func(t *testing.T) {
		t.Parallel()

		err := gistview.Classify(errors.New("unexpected end of JSON input"))

		assert.Equal(t, gistview.ErrFetchFailed, gistview.KindOf(err))
		assert.Equal(t, "unexpected end of JSON input", err.Error())
	})
}
