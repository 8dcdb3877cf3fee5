package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

const (
	errorTitleNotFoundKey    = "error.not_found.title"
	errorTitleServerErrKey   = "error.server.title"
	errorMessageNotFoundKey  = "error.not_found.message"
	errorMessageServerErrKey = "error.server.message"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return T(loc, errorTitleNotFoundKey)
	}
	return T(loc, errorTitleServerErrKey)
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		message := T(loc, errorMessageServerErrKey)
		if normalizeErrorStatus(statusCode) == http.StatusNotFound {
			message = T(loc, errorMessageNotFoundKey)
		}
		h.raw(`<section class="wgf-error"><h1>`)
		h.text(ErrorPageTitle(statusCode, loc))
		h.raw("</h1><p>")
		h.text(message)
		h.raw("</p></section>")
		return h.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
