package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/louisbranch/whogoesfirst/internal/platform/config"
	"github.com/louisbranch/whogoesfirst/internal/platform/otel"
	"github.com/louisbranch/whogoesfirst/internal/platform/timeouts"
	"go.uber.org/zap"
)

// ServiceWeb names the web service in telemetry and logs.
const ServiceWeb = "whogoesfirst"

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// NewLogger builds the process logger. Debug mode logs human-readable lines
// at debug level; otherwise logs are JSON at info level.
func NewLogger(service string, debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Named(service), nil
}

// RunWithTelemetry configures tracing and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, logger *zap.Logger, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			logger.Warn("otel shutdown", zap.String("service", service), zap.Error(err))
		}
	}()
	return run(ctx)
}
