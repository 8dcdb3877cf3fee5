// Package routepath stores the canonical HTTP paths that do not depend on the
// card catalog, plus helpers that join localized segments into paths.
package routepath

import "strings"

const (
	Root         = "/"
	Health       = "/up"
	CardsJSON    = "/api/v1/cards.json"
	StaticPrefix = "/static/"
)

// Home returns the home path for a language ID.
func Home(lang string) string {
	return Join(lang)
}

// Join builds a slash-terminated absolute path from segments.
func Join(segments ...string) string {
	var b strings.Builder
	b.WriteString("/")
	for _, segment := range segments {
		segment = strings.Trim(segment, "/")
		if segment == "" {
			continue
		}
		b.WriteString(segment)
		b.WriteString("/")
	}
	return b.String()
}

// FirstSegment returns the text after the leading slash up to the next slash.
func FirstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	segment, _, _ := strings.Cut(path, "/")
	return segment
}

// ExactPattern returns a ServeMux pattern that matches only the given path.
func ExactPattern(method string, path string) string {
	pattern := path
	if strings.HasSuffix(pattern, "/") {
		pattern += "{$}"
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return pattern
	}
	return method + " " + pattern
}
