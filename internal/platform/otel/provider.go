package otel

import (
	"context"
	"fmt"

	"github.com/louisbranch/whogoesfirst/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config selects the trace exporter.
type Config struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"OTEL_ENDPOINT"`
	// SampleRatio is the fraction of root spans recorded.
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Setup initialises OpenTelemetry tracing for the given service from the
// WHOGOESFIRST_OTEL_* environment.
//
// Tracing is opt-in: when WHOGOESFIRST_OTEL_ENDPOINT is empty or
// WHOGOESFIRST_OTEL_ENABLED is false, Setup returns a no-op shutdown function
// and no global provider is registered.
//
// The returned shutdown function flushes pending spans and should be deferred
// by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return noop, err
	}
	return SetupWithConfig(ctx, serviceName, cfg)
}

// SetupWithConfig is Setup with an explicit configuration.
func SetupWithConfig(ctx context.Context, serviceName string, cfg Config) (shutdown func(context.Context) error, err error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return noop, fmt.Errorf("otel sample ratio %v is outside [0, 1]", cfg.SampleRatio)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, fmt.Errorf("create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("build trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func noop(context.Context) error { return nil }
