package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

func TestRequestID(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"generated when missing", "", false},
		{"propagated", "abc-123", true},
		{"too long replaced", strings.Repeat("a", maxRequestIDBytes+1), false},
		{"control characters replaced", "bad\tid", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = ctxutil.RequestIDFromCtx(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set("X-Request-Id", tc.incoming)
			}
			rec := httptest.NewRecorder()

			RequestID(handler).ServeHTTP(rec, req)

			if got := rec.Header().Get("X-Request-Id"); got != seen {
				t.Errorf("response header %q differs from context %q", got, seen)
			}
			if tc.keep {
				if seen != tc.incoming {
					t.Errorf("got %q, want %q", seen, tc.incoming)
				}
				return
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("expected generated UUID, got %q", seen)
			}
		})
	}
}

func TestRequestID_StoresClientIP(t *testing.T) {
	var ip string
	var ok bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, ok = ctxutil.ClientIPFromCtx(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:52114"
	RequestID(handler).ServeHTTP(httptest.NewRecorder(), req)

	if !ok || ip != "203.0.113.9" {
		t.Fatalf("ClientIPFromCtx = (%q, %v), want 203.0.113.9", ip, ok)
	}
}
