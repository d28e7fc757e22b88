//go:build api

package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"tourbook/internal/mailer"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/test/api/testserver"
	"tourbook/test/fixtures"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	signup := models.SignupRequest{
		Name:            "Laura Wilson",
		Email:           "Laura@Example.com",
		Password:        "pass1234",
		PasswordConfirm: "pass1234",
	}

	t.Run("creates the account and signs in", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/signup", signup)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		resp := testutil.ParseEnvelope(t, w)
		assert.Equal(t, "success", resp.Status)
		assert.NotEmpty(t, resp.Token)

		user, ok := resp.Data["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "laura@example.com", user["email"])
		assert.Equal(t, models.RoleUser, user["role"])
		assert.NotContains(t, user, "password")

		cookie := testutil.Cookie(w, middleware.TokenCookie)
		require.NotNil(t, cookie)
		assert.Equal(t, resp.Token, cookie.Value)
		assert.True(t, cookie.HttpOnly)

		msg, ok := testServer.Outbox.Last("laura@example.com", mailer.TemplateWelcome, 2*time.Second)
		require.True(t, ok, "welcome email should be delivered")
		assert.Equal(t, testserver.TestBaseURL+"/me", msg.URL)
	})

	t.Run("duplicate email", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/signup", signup)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, testutil.ParseEnvelope(t, w).Message, "Duplicate field value")
	})

	t.Run("password confirmation mismatch", func(t *testing.T) {
		bad := signup
		bad.Email = "other@example.com"
		bad.PasswordConfirm = "different"

		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/signup", bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, testutil.ParseEnvelope(t, w).Message, "Invalid input data.")
	})
}

func TestLogin(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user := testServer.SeedUser(t, fixtures.NewUser().WithEmail("leo@example.com"))
	testServer.SeedUser(t, fixtures.NewUser().WithEmail("gone@example.com").Inactive())

	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		expectedMsg    string
	}{
		{"valid credentials", user.Email, fixtures.DefaultPassword, http.StatusOK, ""},
		{"wrong password", user.Email, "wrongpass", http.StatusUnauthorized, "Incorrect email or password"},
		{"unknown email", "nobody@example.com", fixtures.DefaultPassword, http.StatusUnauthorized, "Incorrect email or password"},
		{"deactivated account", "gone@example.com", fixtures.DefaultPassword, http.StatusUnauthorized, "Incorrect email or password"},
		{"missing password", user.Email, "", http.StatusBadRequest, "Please provide email and password!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/login",
				models.LoginRequest{Email: tt.email, Password: tt.password})

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			resp := testutil.ParseEnvelope(t, w)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, resp.Message)
			} else {
				assert.NotEmpty(t, resp.Token)
			}
		})
	}
}

func TestProtect(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user, token := testServer.SeedSession(t, models.RoleUser)

	t.Run("bearer token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, user.Email, testutil.ParseEnvelope(t, w).Doc(t)["email"])
	})

	t.Run("session cookie", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})

		w := testutil.Serve(testServer.Router, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "You are not logged in! Please log in to get access.", testutil.ParseEnvelope(t, w).Message)
	})

	t.Run("forged token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token+"x", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid token. Please log in again!", testutil.ParseEnvelope(t, w).Message)
	})
}

func TestLogout(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	_, token := testServer.SeedSession(t, models.RoleUser)

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	cookie := testutil.Cookie(w, middleware.TokenCookie)
	require.NotNil(t, cookie)
	assert.Equal(t, "loggedout", cookie.Value)

	// Logout revokes the token server-side in this setup
	w = testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPasswordReset(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user := testServer.SeedUser(t, fixtures.NewUser().WithEmail("kate@example.com"))

	t.Run("unknown email", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/forgotPassword",
			models.ForgotPasswordRequest{Email: "nobody@example.com"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/users/forgotPassword",
		models.ForgotPasswordRequest{Email: user.Email})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Token sent to email!", testutil.ParseEnvelope(t, w).Message)

	msg, ok := testServer.Outbox.Last(user.Email, mailer.TemplatePasswordReset, time.Second)
	require.True(t, ok, "reset email should be sent synchronously")
	prefix := testserver.TestBaseURL + "/api/v1/users/resetPassword/"
	require.True(t, strings.HasPrefix(msg.URL, prefix), msg.URL)
	resetToken := strings.TrimPrefix(msg.URL, prefix)

	t.Run("bad token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/resetPassword/not-a-token",
			models.ResetPasswordRequest{Password: "newpass123", PasswordConfirm: "newpass123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Token is invalid or has expired", testutil.ParseEnvelope(t, w).Message)
	})

	t.Run("valid token sets the new password", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/resetPassword/"+resetToken,
			models.ResetPasswordRequest{Password: "newpass123", PasswordConfirm: "newpass123"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotEmpty(t, testutil.ParseEnvelope(t, w).Token)

		testServer.Login(t, user.Email, "newpass123")
	})

	t.Run("token is single use", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/resetPassword/"+resetToken,
			models.ResetPasswordRequest{Password: "another123", PasswordConfirm: "another123"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdatePassword(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	user, token := testServer.SeedSession(t, models.RoleUser)

	t.Run("wrong current password", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/updateMyPassword", token,
			models.UpdatePasswordRequest{PasswordCurrent: "nope1234", Password: "newpass123", PasswordConfirm: "newpass123"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Your current password is wrong.", testutil.ParseEnvelope(t, w).Message)
	})

	t.Run("changes the password", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPatch, "/api/v1/users/updateMyPassword", token,
			models.UpdatePasswordRequest{PasswordCurrent: fixtures.DefaultPassword, Password: "newpass123", PasswordConfirm: "newpass123"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.NotEmpty(t, testutil.ParseEnvelope(t, w).Token)

		testServer.Login(t, user.Email, "newpass123")
	})
}
