// Package github provides gist access through the GitHub REST API.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/fwojciec/gistview"
	gogithub "github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

// Compile-time interface verification.
var (
	_ gistview.Fetcher = (*Client)(nil)
	_ gistview.Lister  = (*Client)(nil)
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com/"

// mediaTypeV3 is the versioned JSON media type requested for every call.
const mediaTypeV3 = "application/vnd.github.v3+json"

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 15 * time.Second

// listPageSize is the number of gists requested per listing page.
const listPageSize = 100

// Client fetches gists anonymously; no token is ever sent.
type Client struct {
	client *gogithub.Client
	logger *zap.Logger
}

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// WithBaseURL sets the API base URL (for tests or GitHub Enterprise).
func WithBaseURL(baseURL string) ClientOption {
	return func(cfg *clientConfig) {
		cfg.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cfg *clientConfig) {
		cfg.httpClient = c
	}
}

// WithLogger sets the logger for fetch diagnostics.
func WithLogger(l *zap.Logger) ClientOption {
	return func(cfg *clientConfig) {
		cfg.logger = l
	}
}

// NewClient creates a new GitHub gist client.
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	base, err := url.Parse(cfg.baseURL)
	if err != nil {
		return nil, fmt.Errorf("github: invalid base URL %q: %w", cfg.baseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	client := gogithub.NewClient(httpClient)
	client.BaseURL = base

	return &Client{client: client, logger: logger}, nil
}

// Fetch returns the gist with the given ID, keeping its files in the order
// the API listed them.
func (c *Client) Fetch(ctx context.Context, id string) (*gistview.Gist, error) {
	req, err := c.client.NewRequest(http.MethodGet, "gists/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", mediaTypeV3)

	start := time.Now()
	var payload gistPayload
	if _, err := c.client.Do(ctx, req, &payload); err != nil {
		c.logger.Warn("gist loading error",
			zap.String("id", id),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, classify(err)
	}

	c.logger.Debug("gist fetched",
		zap.String("id", id),
		zap.Int("files", len(payload.Files)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return payload.gist(), nil
}

// List returns the public gists of user, first page only.
func (c *Client) List(ctx context.Context, user string) ([]gistview.GistSummary, error) {
	opts := &gogithub.GistListOptions{
		ListOptions: gogithub.ListOptions{PerPage: listPageSize},
	}
	gists, _, err := c.client.Gists.List(ctx, user, opts)
	if err != nil {
		c.logger.Warn("gist listing error", zap.String("user", user), zap.Error(err))
		return nil, classify(err)
	}

	summaries := make([]gistview.GistSummary, 0, len(gists))
	for _, g := range gists {
		filenames := make([]string, 0, len(g.Files))
		for name := range g.Files {
			filenames = append(filenames, string(name))
		}
		sort.Strings(filenames)

		summaries = append(summaries, gistview.GistSummary{
			ID:          g.GetID(),
			Description: g.GetDescription(),
			HTMLURL:     g.GetHTMLURL(),
			Public:      g.GetPublic(),
			Filenames:   filenames,
			UpdatedAt:   g.GetUpdatedAt().Time,
		})
	}
	return summaries, nil
}

// classify converts go-github errors into gistview errors.
func classify(err error) error {
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return &gistview.Error{Kind: gistview.ErrRateLimited, Status: statusOf(rateErr.Response), Err: err}
	}
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &gistview.Error{Kind: gistview.ErrRateLimited, Status: statusOf(abuseErr.Response), Err: err}
	}
	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return gistview.StatusError(respErr.Response.StatusCode, err)
	}
	return gistview.Classify(err)
}

func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// gistPayload is the subset of the gist resource used by gistview.
type gistPayload struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	UpdatedAt   time.Time `json:"updated_at"`
	Owner       *struct {
		Login string `json:"login"`
	} `json:"owner"`
	Files orderedFiles `json:"files"`
}

func (p *gistPayload) gist() *gistview.Gist {
	g := &gistview.Gist{
		ID:          p.ID,
		Description: p.Description,
		HTMLURL:     p.HTMLURL,
		UpdatedAt:   p.UpdatedAt,
		Files:       p.Files,
	}
	if p.Owner != nil {
		g.Owner = p.Owner.Login
	}
	return g
}

// orderedFiles decodes the "files" object keeping its key order, which a
// Go map would lose. Files are named by their key.
type orderedFiles []gistview.RawFile

func (f *orderedFiles) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*f = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("files: expected object, got %v", tok)
	}

	var files orderedFiles
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		filename, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("files: expected filename key, got %v", keyTok)
		}

		var entry struct {
			Content string `json:"content"`
		}
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("files: %s: %w", filename, err)
		}
		files = append(files, gistview.RawFile{Filename: filename, Content: entry.Content})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*f = files
	return nil
}
