// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/pollroom/realtime"
	"github.com/danielhkuo/pollroom/store"
)

func newTestRouter() *http.ServeMux {
	return NewRouter(store.NewMemStore(), realtime.NewHub())
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want 200", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("GET /health body = %q, want OK", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET / status = %d, want 200", w.Code)
	}
}

func TestRouteMethods(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"create poll wrong method", "GET", "/create_poll", http.StatusMethodNotAllowed},
		{"vote wrong method", "GET", "/vote", http.StatusMethodNotAllowed},
		{"poll page wrong method", "POST", "/poll/abc", http.StatusMethodNotAllowed},
		{"unknown poll", "GET", "/poll/abc", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestRouter()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d", tt.method, tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

// TestCreatePollRouted exercises the create-then-fetch flow through the mux
// to confirm path values reach the handlers.
func TestCreatePollRouted(t *testing.T) {
	mux := newTestRouter()

	form := url.Values{"question": {"Coffee or Tea?"}, "options": {"Coffee", "Tea"}}
	req := httptest.NewRequest("POST", "/create_poll", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("POST /create_poll status = %d, want 303. Body: %s", w.Code, w.Body.String())
	}

	loc := w.Header().Get("Location")
	req = httptest.NewRequest("GET", loc, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET %s status = %d, want 200. Body: %s", loc, w.Code, w.Body.String())
	}
}
