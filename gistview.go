// Package gistview provides domain types for loading and viewing GitHub Gists.
package gistview

import (
	"context"
	"time"
)

// Gist is a fetched gist payload.
type Gist struct {
	ID          string
	Description string
	HTMLURL     string
	Owner       string
	UpdatedAt   time.Time
	Files       []RawFile // In the order the provider listed them
}

// RawFile is a single file as returned by the gist provider.
type RawFile struct {
	Filename string
	Content  string
}

// File is a gist file prepared for display.
// Files are rebuilt from scratch on every successful fetch and never mutated.
type File struct {
	Filename     string        `json:"filename" yaml:"filename"`
	Language     string        `json:"language" yaml:"language"`
	Content      string        `json:"content" yaml:"content"`
	RawLines     []string      `json:"rawLines" yaml:"rawLines"`         // Content split on "\n"
	Lines        []string      `json:"lines" yaml:"lines"`               // Highlighted markup, one per raw line
	ImportBlocks []ImportBlock `json:"importBlocks" yaml:"importBlocks"` // Ascending, non-overlapping
}

// ImportBlock is an inclusive, 0-based range of lines holding import statements.
type ImportBlock struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of lines covered by the block.
func (b ImportBlock) Len() int {
	return b.End - b.Start + 1
}

// GistSummary describes a gist in a user's gist listing.
type GistSummary struct {
	ID          string
	Description string
	HTMLURL     string
	Public      bool
	Filenames   []string
	UpdatedAt   time.Time
}

// Fetcher retrieves a gist by ID from the gist provider.
type Fetcher interface {
	// Fetch returns the gist with the given ID.
	// Provider failures are reported as *Error values.
	Fetch(ctx context.Context, id string) (*Gist, error)
}

// Lister lists the public gists of a user.
type Lister interface {
	List(ctx context.Context, user string) ([]GistSummary, error)
}

// Clipboard provides clipboard operations.
type Clipboard interface {
	// Copy writes content to the system clipboard.
	Copy(content string) error
}

// Viewer displays a gist interactively.
type Viewer interface {
	// View loads gistURL and blocks until the user exits.
	View(ctx context.Context, gistURL string) error
}
