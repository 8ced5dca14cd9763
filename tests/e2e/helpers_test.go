//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/saudaghar/marketplace-backend/internal/adapter/events"
	"github.com/saudaghar/marketplace-backend/internal/adapter/postgres/testhelper"
	"github.com/saudaghar/marketplace-backend/internal/app"
	"github.com/saudaghar/marketplace-backend/internal/config"
)

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type testServer struct {
	URL    string
	client *http.Client
}

// setupTestServer wires the full application over a fresh database and
// serves it from httptest.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-at-least-32-chars-long!!",
			JWTIssuer:       "test-issuer",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
			BcryptCost:      4,
		},
		Search:    config.SearchConfig{RecentLimit: 12, ResultLimit: 50, CandidateLimit: 200},
		Listing:   config.ListingConfig{FeaturedLimit: 6, MaxImages: 10},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PATCH,OPTIONS"},
		RateLimit: config.RateLimitConfig{Enabled: false, CleanupInterval: time.Minute},
	}

	contracts, err := events.LoadContracts()
	require.NoError(t, err)
	publisher := events.NewLogPublisher(logger, contracts)

	c := app.NewContainer(logger, cfg, pool, publisher)
	t.Cleanup(c.Limiter.Stop)

	srv := httptest.NewServer(c.Router)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, client: srv.Client()}
}

// request sends a JSON request and decodes a JSON object response, if any.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	status, raw := ts.requestRaw(t, method, path, token, body)
	if len(raw) == 0 {
		return status, nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

// requestList is request for endpoints that answer with a JSON array.
func (ts *testServer) requestList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()
	status, raw := ts.requestRaw(t, method, path, token, nil)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

func (ts *testServer) requestRaw(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, buf.Bytes()
}

type member struct {
	ID           string
	Email        string
	Password     string
	AccessToken  string
	RefreshToken string
}

// registerMember signs up a unique member and returns its tokens.
func (ts *testServer) registerMember(t *testing.T, business string) member {
	t.Helper()

	suffix := uuid.New().String()[:8]
	m := member{
		Email:    fmt.Sprintf("%s-%s@example.pk", business, suffix),
		Password: "Str0ngPass!",
	}

	status, body := ts.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]any{
		"email":            m.Email,
		"password":         m.Password,
		"full_name":        "Member " + suffix,
		"cnic_number":      "35202-1234567-1",
		"business_name":    business + " Traders",
		"business_type":    "Manufacturer",
		"business_address": "Plot 4, Industrial Area",
		"phone":            "03001234567",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	m.AccessToken = body["access_token"].(string)
	m.RefreshToken = body["refresh_token"].(string)
	m.ID = body["profile"].(map[string]any)["id"].(string)
	return m
}

// createListing posts a listing as m and returns its id.
func (ts *testServer) createListing(t *testing.T, m member, overrides map[string]any) string {
	t.Helper()

	body := map[string]any{
		"material_name": "Cotton Scraps",
		"category":      "Textile Waste",
		"condition":     "Leftover",
		"quantity":      "500 kg",
		"price":         1200.0,
		"location":      "Gulberg",
		"city":          "Lahore",
		"description":   "Clean offcuts from a garment unit",
	}
	for k, v := range overrides {
		body[k] = v
	}

	status, resp := ts.request(t, http.MethodPost, "/api/v1/listings", m.AccessToken, body)
	require.Equal(t, http.StatusCreated, status, "create listing: %v", resp)
	return resp["id"].(string)
}

func listingIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	items, ok := body["listings"].([]any)
	require.True(t, ok, "expected listings array in %v", body)
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.(map[string]any)["id"].(string)
	}
	return ids
}
