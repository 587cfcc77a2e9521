package gistview

import "strings"

// ParseGistID extracts the gist ID from a gist URL: the last path segment
// with any query string or fragment removed.
//
//	https://gist.github.com/user/abc123      -> abc123
//	https://api.github.com/gists/abc123?x=1  -> abc123
func ParseGistID(gistURL string) (string, error) {
	gistURL = strings.TrimSpace(gistURL)
	id := gistURL
	if i := strings.LastIndex(gistURL, "/"); i >= 0 {
		id = gistURL[i+1:]
	}
	if i := strings.IndexAny(id, "?#"); i >= 0 {
		id = id[:i]
	}
	if id == "" {
		return "", &Error{Kind: ErrInvalidURL}
	}
	return id, nil
}
