// Package locale selects the active site language from the request path and
// carries it in the request context.
package locale

import (
	"context"
	"net/http"

	"github.com/louisbranch/whogoesfirst/internal/catalog"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routepath"
)

// languageContextKey is the context key for the active language.
type languageContextKey struct{}

// FromPath returns the language named by the first path segment, or the
// default language when that segment is not a registered language.
func FromPath(path string, c *catalog.Catalog) catalog.Language {
	return c.LanguageOrDefault(routepath.FirstSegment(path))
}

// WithLanguage stores the active language in context.
func WithLanguage(ctx context.Context, lang catalog.Language) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// FromContext returns the active language stored in context.
func FromContext(ctx context.Context) (catalog.Language, bool) {
	if ctx == nil {
		return catalog.Language{}, false
	}
	lang, ok := ctx.Value(languageContextKey{}).(catalog.Language)
	return lang, ok
}

// Middleware resolves the request language before any handler runs.
func Middleware(c *catalog.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := FromPath(r.URL.Path, c)
			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
		})
	}
}
