package gistview

import (
	"context"
	"errors"
	"sync"
)

// State is the lifecycle state of a Session.
type State int

// Session states.
const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is a snapshot of a Session.
type Result struct {
	URL     string
	Files   []File
	Loading bool
	Error   string
}

// State derives the lifecycle state from the snapshot.
func (r Result) State() State {
	switch {
	case r.Loading:
		return StateLoading
	case r.Error != "":
		return StateError
	case len(r.Files) > 0:
		return StateSuccess
	default:
		return StateIdle
	}
}

// Request identifies one load started by Session.Begin.
type Request struct {
	URL string
	gen uint64
}

// Session holds the loader state for a changing gist URL.
// Each Begin supersedes earlier requests; Resolve ignores responses for
// superseded requests, so a slow stale response never overwrites a newer one.
type Session struct {
	mu      sync.Mutex
	gen     uint64
	url     string
	files   []File
	loading bool
	err     string
}

// NewSession creates an idle Session.
func NewSession() *Session {
	return &Session{}
}

// Begin starts loading gistURL. For an empty URL the session resets to idle
// and ok is false: there is nothing to fetch.
func (s *Session) Begin(gistURL string) (req Request, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.url = gistURL
	s.err = ""
	if gistURL == "" {
		s.files = nil
		s.loading = false
		return Request{gen: s.gen}, false
	}
	s.loading = true
	return Request{URL: gistURL, gen: s.gen}, true
}

// Resolve applies the outcome of req. It returns false and changes nothing
// when req has been superseded. On error the previous files are kept and
// the error message is recorded; cancellation only stops loading.
func (s *Session) Resolve(req Request, files []File, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.gen != s.gen {
		return false
	}
	s.loading = false
	switch {
	case err == nil:
		s.files = files
		s.err = ""
	case errors.Is(err, context.Canceled):
	default:
		s.err = err.Error()
	}
	return true
}

// Load runs a complete Begin/Load/Resolve cycle synchronously.
func (s *Session) Load(ctx context.Context, loader *Loader, gistURL string) Result {
	req, ok := s.Begin(gistURL)
	if ok {
		files, err := loader.Load(ctx, gistURL)
		s.Resolve(req, files, err)
	}
	return s.Snapshot()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Result{
		URL:     s.url,
		Files:   s.files,
		Loading: s.loading,
		Error:   s.err,
	}
}
