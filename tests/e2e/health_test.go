//go:build e2e

package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE2E_LiveEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.doJSON(t, http.MethodGet, "/health/live", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestE2E_ReadyEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.doJSON(t, http.MethodGet, "/health/ready", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestE2E_HealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	status, body := ts.doJSON(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok, "expected components object")

	db, ok := components["database"].(map[string]any)
	require.True(t, ok, "expected database component")
	assert.Equal(t, "ok", db["status"])
}
