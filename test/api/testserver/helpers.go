//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"tourbook/internal/models"
	"tourbook/test/fixtures"
	"tourbook/test/testutil"

	"github.com/stretchr/testify/require"
)

// SeedUser inserts a user directly, bypassing signup.
func (ts *TestServer) SeedUser(t *testing.T, b *fixtures.UserBuilder) *models.User {
	t.Helper()
	user := b.Build()
	require.NoError(t, ts.UserRepo.Create(context.Background(), user), "failed to seed user")
	return user
}

// SeedTour inserts a tour directly.
func (ts *TestServer) SeedTour(t *testing.T, b *fixtures.TourBuilder) *models.Tour {
	t.Helper()
	tour := b.Build()
	require.NoError(t, ts.TourRepo.Create(context.Background(), tour), "failed to seed tour")
	return tour
}

// SeedReview inserts a review directly. Tour ratings are not recomputed.
func (ts *TestServer) SeedReview(t *testing.T, review *models.Review) *models.Review {
	t.Helper()
	require.NoError(t, ts.ReviewRepo.Create(context.Background(), review), "failed to seed review")
	return review
}

// Login signs a user in through the API and returns the session token.
func (ts *TestServer) Login(t *testing.T, email, password string) string {
	t.Helper()

	w := testutil.MakeRequest(t, ts.Router, http.MethodPost, "/api/v1/users/login",
		models.LoginRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	token := testutil.ParseEnvelope(t, w).Token
	require.NotEmpty(t, token, "login should return a token")
	return token
}

// SeedSession seeds a user with role and returns it with a session token.
func (ts *TestServer) SeedSession(t *testing.T, role string) (*models.User, string) {
	t.Helper()
	user := ts.SeedUser(t, fixtures.NewUser().WithRole(role))
	return user, ts.Login(t, user.Email, fixtures.DefaultPassword)
}
