package middleware

import (
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/mpodlasin/mpodlasin-website/internal/observability"
)

// Logger attaches a request-scoped zap logger to the context and logs one
// line per completed request. It also feeds the per-route request counter.
func Logger(base *zap.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = observability.NoopLogger()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := chiMid.GetReqID(r.Context())
			logger := base.With(
				zap.String("request_id", rid),
				zap.String("method", observability.SanitizeMethod(r.Method)),
				zap.String("path", observability.SanitizeRoute(r.URL.Path)),
			)
			if ip := clientIP(r); ip != "" {
				logger = logger.With(zap.String("remote_ip", ip))
			}
			if traceID := observability.TraceID(r.Context()); traceID != "" {
				logger = logger.With(zap.String("trace_id", traceID))
			}
			ctx := observability.WithLogger(r.Context(), logger)
			if rid != "" {
				ctx = WithRequestID(ctx, rid)
			}
			r = r.WithContext(ctx)

			rec := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			var panicked bool
			defer func() {
				status := rec.status
				if panicked && status < http.StatusInternalServerError {
					status = http.StatusInternalServerError
				}
				route := routePattern(r)
				observability.ObserveRequest(route, status)
				fields := []zap.Field{
					zap.String("route", observability.SanitizeRoute(route)),
					zap.Int("status", status),
					zap.Duration("latency", time.Since(start)),
					zap.Int64("bytes", rec.bytes),
					zap.Bool("htmx", IsHTMX(r.Context()) || r.Header.Get("HX-Request") == "true"),
				}
				switch {
				case status >= http.StatusInternalServerError:
					logger.Error("request completed", fields...)
				case status >= http.StatusBadRequest:
					logger.Warn("request completed", fields...)
				default:
					logger.Info("request completed", fields...)
				}
			}()
			defer func() {
				if v := recover(); v != nil {
					panicked = true
					panic(v)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}

// Recover turns panics into a 500 and logs the stack trace.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				observability.FromContext(r.Context()).Error("panic recovered",
					zap.Any("panic", v),
					zap.ByteString("stack", debug.Stack()),
				)
				writeError(w, r, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func clientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
