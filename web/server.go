// Package web serves gists as HTML pages and JSON over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/fwojciec/gistview"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// shutdownTimeout bounds graceful shutdown once the serve context ends.
const shutdownTimeout = 5 * time.Second

// Server renders gists loaded through a shared Loader. Handlers keep no
// per-request state, so one Server serves concurrent requests.
type Server struct {
	loader *gistview.Loader
	logger *zap.Logger
	router *mux.Router
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) ServerOption {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer creates a Server backed by loader.
func NewServer(loader *gistview.Loader, opts ...ServerOption) *Server {
	s := &Server{
		loader: loader,
		logger: zap.NewNop(),
		router: mux.NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router.Use(s.logRequests)
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/gists/{id}", s.handleGist).Methods(http.MethodGet)
	s.router.HandleFunc("/api/gists/{id}", s.handleAPIGist).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleIndex shows the URL form, or redirects a submitted URL to its gist page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	gistURL := r.URL.Query().Get("url")
	if gistURL == "" {
		s.renderPage(w, http.StatusOK, pageData{})
		return
	}

	id, err := gistview.ParseGistID(gistURL)
	if err != nil {
		s.renderPage(w, statusFor(err), pageData{URL: gistURL, Error: err.Error()})
		return
	}
	http.Redirect(w, r, "/gists/"+url.PathEscape(id), http.StatusFound)
}

func (s *Server) handleGist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	files, err := s.loader.Load(r.Context(), id)
	if err != nil {
		s.renderPage(w, statusFor(err), pageData{Title: id, URL: id, Error: err.Error()})
		return
	}

	expanded := expandedKeys(r.URL.Query()["expand"])
	s.renderPage(w, http.StatusOK, pageData{
		Title: id,
		URL:   id,
		Files: buildFileViews(r.URL.Path, files, expanded),
	})
}

type apiResponse struct {
	Files []gistview.File `json:"files,omitempty"`
	Error string          `json:"error,omitempty"`
}

func (s *Server) handleAPIGist(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	files, err := s.loader.Load(r.Context(), id)
	if err != nil {
		s.writeJSON(w, statusFor(err), apiResponse{Error: err.Error()})
		return
	}
	s.writeJSON(w, http.StatusOK, apiResponse{Files: files})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Warn("rendering page", zap.Error(err))
	}
}

// statusFor maps a load error to the HTTP status of its page.
func statusFor(err error) int {
	if errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable
	}
	switch gistview.KindOf(err) {
	case gistview.ErrInvalidURL:
		return http.StatusBadRequest
	case gistview.ErrNotFound, gistview.ErrEmptyGist:
		return http.StatusNotFound
	case gistview.ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

type pageData struct {
	Title  string
	URL    string
	Error  string
	Static bool // Standalone document without form or toggle links
	Files  []fileView
}

// WriteHTML writes files as a standalone HTML document with every import
// block expanded.
func WriteHTML(w io.Writer, title string, files []gistview.File) error {
	views := buildFileViews("", files, allKeys(files))
	for i := range views {
		for j := range views[i].Rows {
			views[i].Rows[j].Toggle = ""
		}
	}
	if err := pageTemplate.Execute(w, pageData{Title: title, Static: true, Files: views}); err != nil {
		return fmt.Errorf("rendering %s: %w", title, err)
	}
	return nil
}

func allKeys(files []gistview.File) map[gistview.BlockKey]bool {
	keys := make(map[gistview.BlockKey]bool)
	for key := range gistview.NewCollapseState(files) {
		keys[key] = true
	}
	return keys
}

type fileView struct {
	Filename string
	Language string
	Rows     []rowView
}

// rowView is one rendered row. Kind is "line", "import", "header" or "collapsed".
type rowView struct {
	Kind   string
	Number int
	HTML   template.HTML
	Text   string
	Toggle string
}

// expandedKeys parses the expand query values. Blocks start collapsed, so
// only expanded blocks are carried in the URL.
func expandedKeys(values []string) map[gistview.BlockKey]bool {
	keys := make(map[gistview.BlockKey]bool)
	for _, v := range values {
		if key, ok := gistview.ParseBlockKey(v); ok {
			keys[key] = true
		}
	}
	return keys
}

func buildFileViews(path string, files []gistview.File, expanded map[gistview.BlockKey]bool) []fileView {
	state := gistview.NewCollapseState(files)
	for key := range expanded {
		if _, ok := state[key]; ok {
			state[key] = false
		}
	}

	views := make([]fileView, 0, len(files))
	for _, f := range files {
		view := fileView{Filename: f.Filename, Language: f.Language}
		for _, row := range gistview.Layout(f, state) {
			switch row.Kind {
			case gistview.RowCollapsed, gistview.RowBlockHeader:
				key := gistview.BlockKey{Filename: f.Filename, Index: row.Block}
				rv := rowView{Kind: "header", Text: gistview.ExpandedHeader, Toggle: toggleLink(path, expanded, key)}
				if row.Kind == gistview.RowCollapsed {
					rv.Kind = "collapsed"
					rv.Text = gistview.CollapsedSummary(row.Count)
				}
				view.Rows = append(view.Rows, rv)
			case gistview.RowImportLine:
				view.Rows = append(view.Rows, rowView{Kind: "import", Number: row.Number(), HTML: template.HTML(f.Lines[row.Line])})
			default:
				view.Rows = append(view.Rows, rowView{Kind: "line", Number: row.Number(), HTML: template.HTML(f.Lines[row.Line])})
			}
		}
		views = append(views, view)
	}
	return views
}

// toggleLink returns the page link with only key's expansion flipped.
func toggleLink(path string, expanded map[gistview.BlockKey]bool, key gistview.BlockKey) string {
	var values []string
	for k := range expanded {
		if k != key {
			values = append(values, k.String())
		}
	}
	if !expanded[key] {
		values = append(values, key.String())
	}
	if len(values) == 0 {
		return path
	}
	slices.Sort(values)
	return path + "?" + url.Values{"expand": values}.Encode()
}
