//go:build e2e

package e2e_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_RegisterLoginRefreshLogout(t *testing.T) {
	ts := setupTestServer(t)

	suffix := uuid.New().String()[:8]
	email := fmt.Sprintf("flow-%s@example.com", suffix)
	username := "flow_" + suffix
	password := "a-long-enough-password"

	// Register.
	status, body := ts.doJSON(t, http.MethodPost, "/users", map[string]string{
		"email":    email,
		"username": username,
		"fullname": "Flow Tester",
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)
	assert.NotEmpty(t, body["accessToken"])
	assert.NotEmpty(t, body["refreshToken"])

	// Duplicate registration conflicts.
	status, _ = ts.doJSON(t, http.MethodPost, "/users", map[string]string{
		"email":    email,
		"username": username,
		"fullname": "Flow Tester",
		"password": password,
	}, "")
	assert.Equal(t, http.StatusConflict, status)

	// Login.
	status, body = ts.doJSON(t, http.MethodPost, "/authentications", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status, "login: %v", body)
	refreshToken, _ := body["refreshToken"].(string)
	require.NotEmpty(t, refreshToken)

	// Wrong password is rejected without detail.
	status, body = ts.doJSON(t, http.MethodPost, "/authentications", map[string]string{
		"username": username,
		"password": "wrong-password-here",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "unauthorized", body["error"])

	// Refresh rotates the pair.
	status, body = ts.doJSON(t, http.MethodPut, "/authentications", map[string]string{
		"refreshToken": refreshToken,
	}, "")
	require.Equal(t, http.StatusOK, status, "refresh: %v", body)
	rotated, _ := body["refreshToken"].(string)
	require.NotEmpty(t, rotated)
	assert.NotEqual(t, refreshToken, rotated)

	// The old refresh token is dead after rotation.
	status, _ = ts.doJSON(t, http.MethodPut, "/authentications", map[string]string{
		"refreshToken": refreshToken,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	// Logout revokes the current token.
	status, _ = ts.doJSON(t, http.MethodDelete, "/authentications", map[string]string{
		"refreshToken": rotated,
	}, "")
	require.Equal(t, http.StatusOK, status)

	status, _ = ts.doJSON(t, http.MethodPut, "/authentications", map[string]string{
		"refreshToken": rotated,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestE2E_InvalidAccessTokenRejected(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.doJSON(t, http.MethodPost, "/playlists", map[string]string{
		"name": "never created",
	}, "not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestE2E_AnonymousCannotCreatePlaylist(t *testing.T) {
	ts := setupTestServer(t)

	status, _ := ts.doJSON(t, http.MethodPost, "/playlists", map[string]string{
		"name": "never created",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)
}
