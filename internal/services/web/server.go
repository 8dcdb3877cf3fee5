package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/whogoesfirst/internal/platform/i18n/messages"
	"github.com/louisbranch/whogoesfirst/internal/platform/timeouts"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routes"
	"github.com/louisbranch/whogoesfirst/internal/services/web/templates"
	"go.uber.org/zap"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// AnalyticsID is rendered on every navigable page when set.
	AnalyticsID string
	Logger      *zap.Logger
}

// Dependencies are the immutable values shared by every request.
type Dependencies struct {
	Table    *routes.Table
	Renderer *templates.Renderer
	Messages *messages.Bundle
}

func (d Dependencies) validate() error {
	switch {
	case d.Table == nil:
		return errors.New("route table is required")
	case d.Renderer == nil:
		return errors.New("renderer is required")
	case d.Messages == nil:
		return errors.New("message bundle is required")
	}
	return nil
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer builds a configured web server.
func NewServer(config Config, deps Dependencies) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config, deps)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(logger),
		},
		logger: logger,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", s.httpAddr))
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}
	return s.httpServer.Close()
}
