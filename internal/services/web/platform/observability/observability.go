// Package observability provides request logging and tracing middleware.
package observability

import (
	"net/http"
	"time"

	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/httpx"
	"github.com/louisbranch/whogoesfirst/internal/services/web/platform/locale"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// TracerName identifies spans emitted by the web service.
const TracerName = "github.com/louisbranch/whogoesfirst/web"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// RequestLogger logs one line per request.
func RequestLogger(logger *zap.Logger) httpx.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rec.statusCode()),
				zap.Int("bytes", rec.bytes),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
			}
			if lang, ok := locale.FromContext(r.Context()); ok {
				fields = append(fields, zap.String("lang", lang.ID))
			}
			if rec.statusCode() >= http.StatusInternalServerError {
				logger.Error("http request", fields...)
				return
			}
			logger.Info("http request", fields...)
		})
	}
}

// Tracing starts a server span per request, continuing any trace carried in
// the incoming headers. It uses the global tracer provider, which is a no-op
// unless tracing was set up.
func Tracing() httpx.Middleware {
	return tracingWith(otel.GetTracerProvider())
}

func tracingWith(provider trace.TracerProvider) httpx.Middleware {
	tracer := provider.Tracer(TracerName)
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.statusCode()
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if lang, ok := locale.FromContext(ctx); ok {
				span.SetAttributes(attribute.String("app.lang", lang.ID))
			}
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}
