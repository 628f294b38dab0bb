// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollroom/models"
)

func TestVoterIdentity(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		xff        string
		want       string
	}{
		{"remote addr only", "1.2.3.4:5678", "", "1.2.3.4"},
		{"remote addr no port", "1.2.3.4", "", "1.2.3.4"},
		{"ipv6 remote addr", "[2001:db8::1]:5678", "", "[2001:db8::1]"},
		{"forwarded single", "10.0.0.1:1234", "5.6.7.8", "5.6.7.8"},
		{"forwarded chain takes first", "10.0.0.1:1234", "5.6.7.8, 9.9.9.9, 10.0.0.1", "5.6.7.8"},
		{"forwarded with whitespace", "10.0.0.1:1234", "  5.6.7.8 , 9.9.9.9", "5.6.7.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/vote", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}

			if got := VoterIdentity(req); got != tt.want {
				t.Errorf("VoterIdentity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusConflict, "You have already voted on this poll")

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Error != "Conflict" {
		t.Errorf("error = %q, want %q", resp.Error, "Conflict")
	}
	if resp.Message != "You have already voted on this poll" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestWithLogging(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/anything", nil))

	if !called {
		t.Error("WithLogging did not call the wrapped handler")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Preflight short-circuits
	req := httptest.NewRequest("OPTIONS", "/vote", nil)
	req.Header.Set("Origin", "https://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("allow origin = %q, want the request origin", got)
	}

	// Normal requests pass through with headers set
	req = httptest.NewRequest("GET", "/health", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin = %q, want *", got)
	}
}
