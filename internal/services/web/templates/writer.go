package templates

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter writes markup fragments and keeps the first write error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) attr(name string, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}
