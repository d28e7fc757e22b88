//go:build api

package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"tourbook/internal/models"
	"tourbook/test/fixtures"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user, token := testServer.SeedSession(t, models.RoleGuide)

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	doc := testutil.ParseEnvelope(t, w).Doc(t)
	assert.Equal(t, user.ID.Hex(), doc["_id"])
	assert.Equal(t, user.Name, doc["name"])
	assert.Equal(t, models.RoleGuide, doc["role"])
	assert.NotContains(t, doc, "password")
	assert.NotContains(t, doc, "active")
}

func TestUpdateMe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user, token := testServer.SeedSession(t, models.RoleUser)

	t.Run("changes the name", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/updateMe", token,
			map[string]interface{}{"name": "Laura Jones", "role": "admin"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		doc := testutil.ParseEnvelope(t, w).Doc(t)
		assert.Equal(t, "Laura Jones", doc["name"])
		assert.Equal(t, models.RoleUser, doc["role"], "role is not self-service")

		// The cached session copy is refreshed
		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token, nil)
		assert.Equal(t, "Laura Jones", testutil.ParseEnvelope(t, w).Doc(t)["name"])
	})

	t.Run("rejects password changes", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/updateMe", token,
			map[string]interface{}{"password": "newpass123", "passwordConfirm": "newpass123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "This route is not for password updates. Please use /updateMyPassword.", testutil.ParseEnvelope(t, w).Message)
	})

	t.Run("stores an uploaded photo", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/updateMe", token,
			map[string]string{"name": "Laura Photo"},
			testutil.FormFile{Field: "photo", ContentType: "image/png", Content: testutil.PNG(t, 800, 600)})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		doc := testutil.ParseEnvelope(t, w).Doc(t)
		photo, _ := doc["photo"].(string)
		assert.True(t, strings.HasPrefix(photo, "user-"+user.ID.Hex()+"-"), photo)
		assert.Equal(t, "image/jpeg", testServer.MinIO.ObjectContentType(context.Background(), "img/users/"+photo))
	})

	t.Run("rejects files that are not images", func(t *testing.T) {
		w := testutil.MakeMultipartRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/updateMe", token, nil,
			testutil.FormFile{Field: "photo", ContentType: "text/plain", Content: []byte("hello")})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Not an image! Please upload only images.", testutil.ParseEnvelope(t, w).Message)
	})
}

func TestDeleteMe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user, token := testServer.SeedSession(t, models.RoleUser)

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/users/deleteMe", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/login",
		models.LoginRequest{Email: user.Email, Password: fixtures.DefaultPassword})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminUsers(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, adminToken := testServer.SeedSession(t, models.RoleAdmin)
	_, userToken := testServer.SeedSession(t, models.RoleUser)
	guide := testServer.SeedUser(t, fixtures.NewUser().WithRole(models.RoleGuide))
	testServer.SeedUser(t, fixtures.NewUser().Inactive())

	t.Run("lists active users", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		resp := testutil.ParseEnvelope(t, w)
		require.NotNil(t, resp.Results)
		assert.Equal(t, 3, *resp.Results)
	})

	t.Run("filters by role", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users?role=guide", adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)

		docs := testutil.ParseEnvelope(t, w).Docs(t)
		require.Len(t, docs, 1)
		assert.Equal(t, guide.ID.Hex(), docs[0]["_id"])
	})

	t.Run("changes a role", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/"+guide.ID.Hex(), adminToken,
			map[string]interface{}{"role": models.RoleLeadGuide})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, models.RoleLeadGuide, testutil.ParseEnvelope(t, w).Doc(t)["role"])
	})

	t.Run("create points to signup", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/users", adminToken,
			map[string]interface{}{"name": "Nobody"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "This route is not defined! Please use /signup instead", testutil.ParseEnvelope(t, w).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/not-an-id", adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("deletes a user", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/users/"+guide.ID.Hex(), adminToken, nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/"+guide.ID.Hex(), adminToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("regular users are forbidden", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users", userToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You do not have permission to perform this action", testutil.ParseEnvelope(t, w).Message)
	})
}
