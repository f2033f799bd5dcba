package observability

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// CloudTraceHeader is the load balancer trace header, formatted TRACE_ID/SPAN_ID;o=FLAG.
const CloudTraceHeader = "X-Cloud-Trace-Context"

const traceContextKey contextKey = "github.com/mpodlasin/mpodlasin-website/internal/observability/trace"

var tracer = otel.Tracer("github.com/mpodlasin/mpodlasin-website/internal/observability")

// TraceInfo is the trace metadata carried on a request context.
type TraceInfo struct {
	TraceID string
	SpanID  string
	Sampled bool
}

// TraceMiddleware starts one server span per request. An incoming W3C
// traceparent or X-Cloud-Trace-Context header becomes the span's parent.
func TraceMiddleware(next http.Handler) http.Handler {
	if next == nil {
		next = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := propagation.TraceContext{}.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		if remote, ok := parseCloudTraceContext(r.Header.Get(CloudTraceHeader)); ok {
			ctx = trace.ContextWithRemoteSpanContext(ctx, remote)
		}

		ctx, span := tracer.Start(ctx, r.Method+" "+spanPath(r), trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		span.SetAttributes(requestAttributes(r)...)

		if sc := span.SpanContext(); sc.IsValid() {
			info := TraceInfo{
				TraceID: sc.TraceID().String(),
				SpanID:  sc.SpanID().String(),
				Sampled: sc.IsSampled(),
			}
			ctx = WithTrace(ctx, info)
			w.Header().Set(CloudTraceHeader, formatCloudTraceHeader(info))
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithTrace stores trace metadata on the context.
func WithTrace(ctx context.Context, info TraceInfo) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, traceContextKey, info)
}

// Trace returns the trace metadata stored by TraceMiddleware.
func Trace(ctx context.Context) (TraceInfo, bool) {
	if ctx == nil {
		return TraceInfo{}, false
	}
	info, ok := ctx.Value(traceContextKey).(TraceInfo)
	return info, ok
}

// TraceID returns the current trace id or "".
func TraceID(ctx context.Context) string {
	info, _ := Trace(ctx)
	return info.TraceID
}

func parseCloudTraceContext(header string) (trace.SpanContext, bool) {
	header = strings.TrimSpace(header)
	traceHex, rest, found := strings.Cut(header, "/")
	if !found || len(traceHex) != 32 {
		return trace.SpanContext{}, false
	}
	traceID, err := trace.TraceIDFromHex(traceHex)
	if err != nil {
		return trace.SpanContext{}, false
	}

	spanPart, options, _ := strings.Cut(rest, ";")
	spanID, ok := parseSpanID(spanPart)
	if !ok {
		return trace.SpanContext{}, false
	}

	var flags trace.TraceFlags
	if strings.TrimSpace(options) == "o=1" {
		flags = trace.FlagsSampled
	}
	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	}), true
}

// parseSpanID accepts the decimal span ids Cloud Trace sends as well as hex.
func parseSpanID(value string) (trace.SpanID, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return trace.SpanID{}, false
	}
	if num, err := strconv.ParseUint(value, 10, 64); err == nil {
		var id trace.SpanID
		binary.BigEndian.PutUint64(id[:], num)
		return id, id.IsValid()
	}
	if len(value) <= 16 {
		id, err := trace.SpanIDFromHex(strings.Repeat("0", 16-len(value)) + value)
		if err == nil {
			return id, true
		}
	}
	return trace.SpanID{}, false
}

func formatCloudTraceHeader(info TraceInfo) string {
	option := "0"
	if info.Sampled {
		option = "1"
	}
	return fmt.Sprintf("%s/%s;o=%s", info.TraceID, info.SpanID, option)
}

func spanPath(r *http.Request) string {
	if r.URL == nil || r.URL.Path == "" {
		return "/"
	}
	return SanitizeRoute(r.URL.Path)
}

func requestAttributes(r *http.Request) []attribute.KeyValue {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", SanitizeMethod(r.Method)),
		attribute.String("url.scheme", scheme),
		attribute.String("url.path", spanPath(r)),
	}
	if r.URL != nil && r.URL.RawQuery != "" {
		attrs = append(attrs, attribute.String("url.query", sanitizeString(r.URL.RawQuery, 0)))
	}
	if r.Host != "" {
		attrs = append(attrs, attribute.String("server.address", r.Host))
	}
	if ua := r.UserAgent(); ua != "" {
		attrs = append(attrs, attribute.String("user_agent.original", sanitizeString(ua, 0)))
	}
	return attrs
}
