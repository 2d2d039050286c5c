package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"funnel/internal/platform/store"
)

func TestTraceContext_BridgesRequestID(t *testing.T) {
	t.Parallel()

	var got string
	var ok bool
	h := RequestID()(TraceContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = store.RequestID(r.Context())
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	if !ok || got == "" {
		t.Fatalf("store request id = %q (%v), want non-empty", got, ok)
	}
}

func TestTraceContext_NoIDIsNoop(t *testing.T) {
	t.Parallel()

	h := TraceContext()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := store.RequestID(r.Context()); ok {
			t.Fatal("request id should be absent without the id middleware")
		}
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
}
