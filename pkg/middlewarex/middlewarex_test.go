package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"namevalue/pkg/contextx"
	"namevalue/pkg/logx"
	"namevalue/pkg/middlewarex"
)

func withLogger(buf *bytes.Buffer, next http.Handler) http.Handler {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(contextx.WithLogger(r.Context(), logger)))
	})
}

func TestTraceID(t *testing.T) {
	testCases := []struct {
		name     string
		incoming string
	}{
		{name: "Generated", incoming: ""},
		{name: "Propagated", incoming: "cv1trace"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var fromContext contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				fromContext = traceID
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set("X-Trace-Id", tc.incoming)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			header := rec.Header().Get("X-Trace-Id")
			rq.NotEmpty(header)
			rq.Equal(header, fromContext.String())

			if tc.incoming != "" {
				rq.Equal(tc.incoming, header)
			}
		})
	}
}

func TestLoggerKeepsQueryOutOfLogs(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := withLogger(&buf, middlewarex.TraceID(middlewarex.Logger(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			contextx.LoggerFromContextOrDefault(r.Context()).Info("handled")
		}),
	)))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/card.png?name=%EA%B9%80", nil))

	rq.Contains(buf.String(), "handled")
	rq.Contains(buf.String(), logx.FieldURL+"=/card.png")
	rq.NotContains(buf.String(), "%EA%B9%80")
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := withLogger(&buf, middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), "boom")
}

func TestResponseLogging(t *testing.T) {
	testCases := []struct {
		name        string
		contentType string
		body        string
		logged      string
		notLogged   string
	}{
		{
			name:        "JSON is masked",
			contentType: "application/json",
			body:        `{"name":"김민수","marketCap":8420}`,
			logged:      `[MASKED]`,
			notLogged:   "김민수",
		},
		{
			name:        "HTML is not dumped",
			contentType: "text/html; charset=utf-8",
			body:        "<p>김민수</p>",
			logged:      "<16 bytes>",
			notLogged:   "김민수",
		},
		{
			name:        "PNG is not dumped",
			contentType: "image/png",
			body:        "\x89PNG",
			logged:      "<4 bytes>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			h := withLogger(&buf, middlewarex.ResponseLogging(logx.NewSensitiveDataMasker(), 1024)(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.Header().Set("Content-Type", tc.contentType)
					_, _ = w.Write([]byte(tc.body))
				}),
			))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			rq.Equal(tc.body, rec.Body.String())
			rq.Contains(buf.String(), tc.logged)

			if tc.notLogged != "" {
				rq.NotContains(buf.String(), tc.notLogged)
			}
		})
	}
}

func TestRequestLoggingMasksForm(t *testing.T) {
	rq := require.New(t)

	var (
		buf  bytes.Buffer
		seen string
	)

	h := withLogger(&buf, middlewarex.RequestLogging(logx.NewSensitiveDataMasker(), 1024)(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			rq.NoError(r.ParseForm())
			seen = r.PostForm.Get("name")
		}),
	))

	req := httptest.NewRequestWithContext(context.Background(), http.MethodPost, "/", strings.NewReader("name=%EA%B9%80%EB%AF%BC%EC%88%98"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	h.ServeHTTP(httptest.NewRecorder(), req)

	// тело после логирования доступно хэндлеру
	rq.Equal("김민수", seen)
	rq.Contains(buf.String(), "[MASKED]")
	rq.NotContains(buf.String(), "%EA%B9%80%EB%AF%BC%EC%88%98")
}
