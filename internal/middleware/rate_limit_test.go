package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLoginRateLimit_BurstThenReject(t *testing.T) {
	srv := LoginRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func() int {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		r.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, r)
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		if code := send(); code != http.StatusOK {
			t.Fatalf("Attempt %d within burst: expected 200, got %d", i+1, code)
		}
	}

	if code := send(); code != http.StatusTooManyRequests {
		t.Errorf("Attempt past burst: expected 429, got %d", code)
	}
}

func TestLoginRateLimit_IsolatesClients(t *testing.T) {
	srv := LoginRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// exhaust one address
	for i := 0; i < 6; i++ {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		r.RemoteAddr = "203.0.113.8:5000"
		srv.ServeHTTP(httptest.NewRecorder(), r)
	}

	// a different address is unaffected
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	r.RemoteAddr = "203.0.113.9:5000"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, r)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected other client unaffected, got %d", rec.Code)
	}
}
