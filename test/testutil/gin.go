// Package testutil holds HTTP helpers shared by the end-to-end suites.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Envelope is the decoded body of an API response.
type Envelope struct {
	Status  string                 `json:"status"`
	Results *int                   `json:"results"`
	Token   string                 `json:"token"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// Doc returns data.data as a single document.
func (e *Envelope) Doc(t *testing.T) map[string]interface{} {
	t.Helper()
	doc, ok := e.Data["data"].(map[string]interface{})
	require.True(t, ok, "data.data should be an object, got %v", e.Data)
	return doc
}

// Docs returns data.data as a list of documents.
func (e *Envelope) Docs(t *testing.T) []map[string]interface{} {
	t.Helper()
	raw, ok := e.Data["data"].([]interface{})
	require.True(t, ok, "data.data should be a list, got %v", e.Data)

	docs := make([]map[string]interface{}, 0, len(raw))
	for _, item := range raw {
		doc, ok := item.(map[string]interface{})
		require.True(t, ok, "list items should be objects")
		docs = append(docs, doc)
	}
	return docs
}

// MakeRequest sends a JSON request without credentials.
func MakeRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return MakeAuthRequest(t, router, method, path, "", body)
}

// MakeAuthRequest sends a JSON request with a bearer token, if one is given.
func MakeAuthRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return Serve(router, req)
}

// Serve runs a prepared request through the router.
func Serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseResponse parses JSON response into target struct.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err, "body: %s", w.Body.String())
}

// ParseEnvelope decodes an API response body.
func ParseEnvelope(t *testing.T, w *httptest.ResponseRecorder) *Envelope {
	t.Helper()
	var env Envelope
	ParseResponse(t, w, &env)
	return &env
}

// Cookie returns the named response cookie, or nil.
func Cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
