//go:build api

package api

import (
	"net/http"
	"testing"

	"tourbook/test/testutil"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/nowhere?x=1", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := testutil.ParseEnvelope(t, w)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "Can't find /api/v1/nowhere?x=1 on this server!", resp.Message)
}

func TestSecurityHeaders(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/health", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
