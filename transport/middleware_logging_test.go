package transport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Samu0104/loucura-total/transport"
	utilsContext "github.com/Samu0104/loucura-total/utils/context"
)

func TestLoggingMiddleware_RequestIDReachesHandler(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := utilsContext.GetRequestID(r.Context())
		if !ok {
			t.Fatalf("no request id in handler context")
		}
		seen = id
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	transport.LoggingMiddleware()(inner).ServeHTTP(rec, req)

	if seen == "" {
		t.Fatalf("request id is empty")
	}
	if hdr := rec.Header().Get("X-Request-ID"); hdr != seen {
		t.Fatalf("X-Request-ID = %q, handler saw %q", hdr, seen)
	}
}
