package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("nonsense")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestLoggerContext(t *testing.T) {
	require.Same(t, NoopLogger(), FromContext(context.Background()))

	logger := zap.NewExample()
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "/", SanitizeRoute(""))
	require.Equal(t, "/articlesforged", SanitizeRoute("/articles\nforged"))
	require.Len(t, SanitizeRoute(strings.Repeat("a", 500)), 180)
	require.Equal(t, []string{"xy", strings.Repeat("t", 64)}, SanitizeTags([]string{"x\ty", strings.Repeat("t", 100)}))
}

func TestTraceMiddlewareContinuesCloudTrace(t *testing.T) {
	var got TraceInfo
	var found bool
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = Trace(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/articles?tag=x", nil)
	req.Header.Set(CloudTraceHeader, "105445aa7843bc8bf206b12000100000/1;o=1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.True(t, found)
	require.Equal(t, "105445aa7843bc8bf206b12000100000", got.TraceID)
	require.Equal(t, "0000000000000001", got.SpanID)
	require.True(t, got.Sampled)
	require.Equal(t, "105445aa7843bc8bf206b12000100000/0000000000000001;o=1", rec.Header().Get(CloudTraceHeader))
}

func TestTraceMiddlewareContinuesTraceparent(t *testing.T) {
	var traceID string
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = TraceID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", traceID)
}

func TestTraceMiddlewareIgnoresMalformedHeader(t *testing.T) {
	var found bool
	handler := TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = Trace(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(CloudTraceHeader, "not-a-trace")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.False(t, found)
	require.Empty(t, rec.Header().Get(CloudTraceHeader))
	require.Empty(t, TraceID(context.Background()))
}

func TestParseSpanID(t *testing.T) {
	id, ok := parseSpanID("12345")
	require.True(t, ok)
	require.Equal(t, "0000000000003039", id.String())

	id, ok = parseSpanID("00f067aa0ba902b7")
	require.True(t, ok)
	require.Equal(t, "00f067aa0ba902b7", id.String())

	_, ok = parseSpanID("0")
	require.False(t, ok)
	_, ok = parseSpanID("zz")
	require.False(t, ok)
}
