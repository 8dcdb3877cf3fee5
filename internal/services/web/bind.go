package web

import (
	"fmt"
	"io/fs"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/louisbranch/whogoesfirst/internal/catalog"
	"github.com/louisbranch/whogoesfirst/internal/platform/i18n/messages"
	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/httpx"
	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/locale"
	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/observability"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routepath"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routes"
	"github.com/louisbranch/whogoesfirst/internal/services/web/static"
	"github.com/louisbranch/whogoesfirst/internal/services/web/templates"
	"go.uber.org/zap"
)

var staticFS fs.FS = static.FS

type handler struct {
	config   Config
	table    *routes.Table
	catalog  *catalog.Catalog
	renderer *templates.Renderer
	messages *messages.Bundle
	logger   *zap.Logger
	// pick chooses the suggested next card.
	pick func(n int) int
}

// NewHandler registers every route of the table on a mux and wraps it with
// the request middleware.
func NewHandler(config Config, deps Dependencies) (http.Handler, error) {
	return newHandler(config, deps, rand.IntN)
}

func newHandler(config Config, deps Dependencies, pick func(n int) int) (http.Handler, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{
		config:   config,
		table:    deps.Table,
		catalog:  deps.Table.Catalog(),
		renderer: deps.Renderer,
		messages: deps.Messages,
		logger:   logger,
		pick:     pick,
	}
	mux, err := h.bindRoutes()
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h.canonicalSlash(mux),
		httpx.RequestID(),
		locale.Middleware(h.catalog),
		observability.Tracing(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(logger),
	), nil
}

// bindRoutes registers one exact GET pattern per route, all served by
// serveRoute. Anything else falls through to handleUnmatched.
func (h *handler) bindRoutes() (mux *http.ServeMux, err error) {
	mux = http.NewServeMux()
	defer func() {
		// ServeMux panics on conflicting patterns.
		if r := recover(); r != nil {
			mux, err = nil, fmt.Errorf("register routes: %v", r)
		}
	}()
	for _, route := range h.table.Routes() {
		mux.Handle(routepath.ExactPattern(http.MethodGet, route.Path), h.serveRoute(route))
		h.logger.Debug("route registered",
			zap.String("path", route.Path),
			zap.String("endpoint", route.Endpoint),
			zap.String("kind", route.Page.Kind.String()),
		)
	}
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS))))
	mux.HandleFunc(routepath.Root, h.handleUnmatched)
	return mux, nil
}

// serveRoute resolves a route to its response by page kind.
func (h *handler) serveRoute(route routes.Route) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch route.Page.Kind {
		case routes.KindRedirect:
			h.handleRedirect(w, r)
		case routes.KindHealth:
			_ = httpx.WriteText(w, http.StatusOK, "ok")
		case routes.KindCardsJSON:
			if err := httpx.WriteJSON(w, http.StatusOK, h.table.CardsDocument()); err != nil {
				h.logger.Error("write cards document", zap.Error(err))
			}
		default:
			h.handlePage(w, r, route)
		}
	})
}

// canonicalSlash permanently redirects a known path requested without its
// trailing slash. It runs ahead of the mux, which would otherwise answer with
// its own temporary redirect.
func (h *handler) canonicalSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isRead(r.Method) && !strings.HasSuffix(r.URL.Path, "/") {
			if route, ok := h.table.Lookup(r.URL.Path + "/"); ok {
				target := route.Path
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// handleUnmatched answers requests no route pattern matched: a known path
// with another method, or an unknown path.
func (h *handler) handleUnmatched(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.table.Lookup(r.URL.Path); ok {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeNotFound(w, r)
}

func isRead(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}
