//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestE2E_AnonymousCannotWrite(t *testing.T) {
	ts := setupTestServer(t)
	seller := ts.registerMember(t, "owner")
	id := ts.createListing(t, seller, nil)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"create listing", http.MethodPost, "/api/v1/listings", map[string]any{"material_name": "x"}},
		{"update listing", http.MethodPatch, "/api/v1/listings/" + id, map[string]any{"price": 1.0}},
		{"deactivate", http.MethodPost, "/api/v1/listings/" + id + "/deactivate", nil},
		{"message", http.MethodPost, "/api/v1/listings/" + id + "/messages", map[string]any{"message": "hi"}},
		{"rate", http.MethodPost, "/api/v1/listings/" + id + "/ratings", map[string]any{"rating": 5}},
		{"me", http.MethodGet, "/api/v1/me", nil},
		{"inbox", http.MethodGet, "/api/v1/me/messages", nil},
		{"notifications", http.MethodGet, "/api/v1/me/notifications", nil},
		{"transactions", http.MethodGet, "/api/v1/me/transactions", nil},
		{"change password", http.MethodPost, "/api/v1/me/password", map[string]any{"current_password": "x", "new_password": "y"}},
		{"dashboard", http.MethodGet, "/api/v1/me/dashboard", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := ts.request(t, tc.method, tc.path, "", tc.body)
			assert.Equal(t, http.StatusUnauthorized, status)
		})
	}
}

func TestE2E_OnlyOwnerManagesListing(t *testing.T) {
	ts := setupTestServer(t)
	owner := ts.registerMember(t, "owner")
	other := ts.registerMember(t, "other")
	id := ts.createListing(t, owner, nil)

	status, _ := ts.request(t, http.MethodPatch, "/api/v1/listings/"+id, other.AccessToken, map[string]any{"price": 1.0})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = ts.request(t, http.MethodPost, "/api/v1/listings/"+id+"/deactivate", other.AccessToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = ts.request(t, http.MethodPost, "/api/v1/listings/"+uuid.NewString()+"/deactivate", other.AccessToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// Owners cannot rate themselves.
	status, _ = ts.request(t, http.MethodPost, "/api/v1/listings/"+id+"/ratings", owner.AccessToken, map[string]any{"rating": 5})
	assert.Equal(t, http.StatusBadRequest, status)

	// Members only see their own inbox.
	status, _ = ts.request(t, http.MethodPost, "/api/v1/listings/"+id+"/messages", other.AccessToken, map[string]any{"message": "price?"})
	assert.Equal(t, http.StatusCreated, status)

	status, inbox := ts.requestList(t, http.MethodGet, "/api/v1/me/messages", other.AccessToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, inbox)
}
