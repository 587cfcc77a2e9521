package gistview

import "strings"

// FilterGists returns the gists whose description or any filename contains
// query, case-insensitively. An empty query keeps every gist.
func FilterGists(gists []GistSummary, query string) []GistSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return gists
	}

	var matched []GistSummary
	for _, g := range gists {
		if matchesGist(g, q) {
			matched = append(matched, g)
		}
	}
	return matched
}

func matchesGist(g GistSummary, q string) bool {
	if strings.Contains(strings.ToLower(g.Description), q) {
		return true
	}
	for _, name := range g.Filenames {
		if strings.Contains(strings.ToLower(name), q) {
			return true
		}
	}
	return false
}
