package service

import (
	"context"
	"errors"
	"testing"
	"time"

	cachemocks "tourbook/internal/cache/mocks"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/mailer"
	mailermocks "tourbook/internal/mailer/mocks"
	"tourbook/internal/models"
	"tourbook/internal/queue"
	repomocks "tourbook/internal/repository/mocks"
	"tourbook/pkg/auth"
	authmocks "tourbook/pkg/auth/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type authDeps struct {
	users    *repomocks.MockUserRepository
	cache    *cachemocks.MockCache
	denylist *cachemocks.MockTokenDenylist
	jwt      *authmocks.MockTokenManager
	mailer   *mailermocks.MockMailer
	mailbox  *queue.Mailbox
}

func newAuthDeps(ctrl *gomock.Controller) *authDeps {
	return &authDeps{
		users:    repomocks.NewMockUserRepository(ctrl),
		cache:    cachemocks.NewMockCache(ctrl),
		denylist: cachemocks.NewMockTokenDenylist(ctrl),
		jwt:      authmocks.NewMockTokenManager(ctrl),
		mailer:   mailermocks.NewMockMailer(ctrl),
		mailbox:  queue.NewMailbox(10),
	}
}

func (d *authDeps) service(withDenylist bool) *AuthService {
	cfg := AuthServiceConfig{
		UserRepo:   d.users,
		Cache:      d.cache,
		JWTManager: d.jwt,
		Mailer:     d.mailer,
		EmailQueue: d.mailbox,
	}
	if withDenylist {
		cfg.Denylist = d.denylist
	}
	return NewAuthService(cfg)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)
	return h
}

func TestNewAuthService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewAuthService(AuthServiceConfig{UserRepo: repomocks.NewMockUserRepository(ctrl)})

	assert.NotNil(t, service)
	assert.NotNil(t, service.cache)
	assert.Nil(t, service.denylist)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	req := &models.SignupRequest{
		Name:            "Laura Wilson",
		Email:           "Laura@Example.com",
		Password:        "pass1234",
		PasswordConfirm: "pass1234",
	}

	t.Run("creates user, queues welcome mail and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)

		d.users.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				user.ID = primitive.NewObjectID()
				assert.Equal(t, "laura@example.com", user.Email)
				assert.Equal(t, models.RoleUser, user.Role)
				assert.Equal(t, models.DefaultPhoto, user.Photo)
				assert.NotEqual(t, req.Password, user.Password)
				assert.Nil(t, user.PasswordChangedAt)
				return nil
			})
		d.jwt.EXPECT().GenerateToken(gomock.Any()).Return("signed-token", nil)

		result, err := d.service(false).Signup(ctx, req, "http://localhost:3000/me")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, "Laura Wilson", result.User.Name)

		require.Equal(t, 1, d.mailbox.Pending())
		delivery, err := d.mailbox.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, mailer.TemplateWelcome, delivery.Message.Template)
		assert.Equal(t, "laura@example.com", delivery.Message.To)
		assert.Equal(t, "http://localhost:3000/me", delivery.Message.URL)
		assert.Zero(t, delivery.Attempts)
	})

	t.Run("duplicate email is returned unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)

		dupErr := apperrors.Duplicate(`"laura@example.com"`, nil)
		d.users.EXPECT().Create(ctx, gomock.Any()).Return(dupErr)

		result, err := d.service(false).Signup(ctx, req, "")

		assert.Nil(t, result)
		assert.Equal(t, dupErr, err)
		assert.Equal(t, 0, d.mailbox.Pending())
	})

	t.Run("full mailbox does not fail signup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.mailbox = queue.NewMailbox(0)

		d.users.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		d.jwt.EXPECT().GenerateToken(gomock.Any()).Return("signed-token", nil)

		result, err := d.service(false).Signup(ctx, req, "")

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: primitive.NewObjectID(), Email: "laura@example.com", Password: hashed(t, "pass1234")}

	tests := []struct {
		name      string
		req       *models.LoginRequest
		setup     func(d *authDeps)
		wantErr   error
		wantToken string
	}{
		{
			name: "successful login",
			req:  &models.LoginRequest{Email: "LAURA@example.com", Password: "pass1234"},
			setup: func(d *authDeps) {
				d.users.EXPECT().FindByEmail(ctx, "laura@example.com").Return(user, nil)
				d.jwt.EXPECT().GenerateToken(user.ID.Hex()).Return("signed-token", nil)
			},
			wantToken: "signed-token",
		},
		{
			name:    "missing password",
			req:     &models.LoginRequest{Email: "laura@example.com"},
			wantErr: apperrors.ErrMissingCredentials,
		},
		{
			name:    "missing email",
			req:     &models.LoginRequest{Password: "pass1234"},
			wantErr: apperrors.ErrMissingCredentials,
		},
		{
			name: "unknown email",
			req:  &models.LoginRequest{Email: "nobody@example.com", Password: "pass1234"},
			setup: func(d *authDeps) {
				d.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, apperrors.ErrDocumentNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			req:  &models.LoginRequest{Email: "laura@example.com", Password: "wrongpass"},
			setup: func(d *authDeps) {
				d.users.EXPECT().FindByEmail(ctx, "laura@example.com").Return(user, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newAuthDeps(ctrl)
			if tt.setup != nil {
				tt.setup(d)
			}

			result, err := d.service(false).Login(ctx, tt.req)

			if tt.wantErr != nil {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, result.Token)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()
	issued := time.Now().Add(-time.Minute)
	claims := &auth.Claims{
		UserID: userID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
		},
	}

	t.Run("no token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := newAuthDeps(ctrl).service(false).Authenticate(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrNotLoggedIn)
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.jwt.EXPECT().ValidateToken("tok").Return(nil, jwt.ErrTokenExpired)

		_, err := d.service(false).Authenticate(ctx, "tok")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrTokenExpired.Message, appErr.Message)
	})

	t.Run("bad signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.jwt.EXPECT().ValidateToken("tok").Return(nil, jwt.ErrTokenSignatureInvalid)

		_, err := d.service(false).Authenticate(ctx, "tok")

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrInvalidToken.Message, appErr.Message)
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.jwt.EXPECT().ValidateToken("tok").Return(claims, nil)
		d.cache.EXPECT().
			Get(ctx, "user:"+userID.Hex(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) (bool, error) {
				*dest.(*models.User) = models.User{ID: userID, Name: "Cached"}
				return true, nil
			})

		user, err := d.service(false).Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, "Cached", user.Name)
	})

	t.Run("cache miss loads and caches the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		dbUser := &models.User{ID: userID, Name: "Laura"}
		d.jwt.EXPECT().ValidateToken("tok").Return(claims, nil)
		d.cache.EXPECT().Get(ctx, "user:"+userID.Hex(), gomock.Any()).Return(false, nil)
		d.users.EXPECT().FindByID(ctx, userID).Return(dbUser, nil)
		d.cache.EXPECT().Set(ctx, "user:"+userID.Hex(), dbUser, 15*time.Minute).Return(nil)

		user, err := d.service(false).Authenticate(ctx, "tok")

		require.NoError(t, err)
		assert.Equal(t, dbUser, user)
	})

	t.Run("user no longer exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.jwt.EXPECT().ValidateToken("tok").Return(claims, nil)
		d.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
		d.users.EXPECT().FindByID(ctx, userID).Return(nil, apperrors.ErrDocumentNotFound)

		_, err := d.service(false).Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrUserGone)
	})

	passwordChanges := []struct {
		name    string
		changed time.Time
		wantErr error
	}{
		{"password changed after issue", issued.Add(10 * time.Second), apperrors.ErrPasswordChanged},
		{"token issued after the backdated stamp", issued.Add(-time.Second), nil},
		{"stamp in the same second as issue", issued, nil},
		{"password changed long before", issued.Add(-24 * time.Hour), nil},
	}
	for _, tt := range passwordChanges {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newAuthDeps(ctrl)
			changed := tt.changed
			d.jwt.EXPECT().ValidateToken("tok").Return(claims, nil)
			d.cache.EXPECT().Get(ctx, gomock.Any(), gomock.Any()).Return(false, nil)
			d.users.EXPECT().FindByID(ctx, userID).Return(&models.User{ID: userID, PasswordChangedAt: &changed}, nil)
			d.cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			user, err := d.service(false).Authenticate(ctx, "tok")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)
		})
	}

	t.Run("revoked token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.jwt.EXPECT().ValidateToken("tok").Return(claims, nil)
		d.denylist.EXPECT().IsRevoked(ctx, auth.HashToken("tok")).Return(true, nil)

		_, err := d.service(true).Authenticate(ctx, "tok")

		assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("without revocation nothing is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		assert.NoError(t, newAuthDeps(ctrl).service(false).Logout(ctx, "tok"))
	})

	t.Run("revokes for the remaining lifetime", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		claims := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(2 * time.Hour))}}
		d.jwt.EXPECT().ValidateToken("tok").Return(claims, nil)
		d.denylist.EXPECT().Revoke(ctx, auth.HashToken("tok"), 2*time.Hour).Return(nil)

		svc := d.service(true)
		svc.now = func() time.Time { return now }

		assert.NoError(t, svc.Logout(ctx, "tok"))
	})

	t.Run("invalid token is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.jwt.EXPECT().ValidateToken("junk").Return(nil, jwt.ErrTokenMalformed)

		assert.NoError(t, d.service(true).Logout(ctx, "junk"))
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: primitive.NewObjectID(), Name: "Laura Wilson", Email: "laura@example.com"}

	t.Run("stores token hash and emails the plain token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)

		var storedHash string
		d.users.EXPECT().FindByEmail(ctx, "laura@example.com").Return(user, nil)
		d.users.EXPECT().
			SetResetToken(ctx, user.ID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, hash string, expires time.Time) error {
				storedHash = hash
				assert.WithinDuration(t, time.Now().Add(10*time.Minute), expires, 5*time.Second)
				return nil
			})
		d.mailer.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg mailer.Message) error {
				assert.Equal(t, mailer.TemplatePasswordReset, msg.Template)
				assert.Equal(t, user.Email, msg.To)
				require.Contains(t, msg.URL, "http://localhost:3000/api/v1/users/resetPassword/")
				plain := msg.URL[len("http://localhost:3000/api/v1/users/resetPassword/"):]
				assert.Len(t, plain, 64)
				assert.Equal(t, auth.HashToken(plain), storedHash)
				return nil
			})

		err := d.service(false).ForgotPassword(ctx, "laura@example.com", "http://localhost:3000")

		require.NoError(t, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.users.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, apperrors.ErrDocumentNotFound)

		err := d.service(false).ForgotPassword(ctx, "nobody@example.com", "")

		assert.ErrorIs(t, err, apperrors.ErrNoUserWithEmail)
	})

	t.Run("delivery failure withdraws the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.users.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
		d.users.EXPECT().SetResetToken(ctx, user.ID, gomock.Any(), gomock.Any()).Return(nil)
		d.mailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp down"))
		d.users.EXPECT().ClearResetToken(ctx, user.ID).Return(nil)

		err := d.service(false).ForgotPassword(ctx, user.Email, "")

		assert.ErrorIs(t, err, apperrors.ErrEmailDelivery)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	req := &models.ResetPasswordRequest{Password: "newpass123", PasswordConfirm: "newpass123"}

	t.Run("sets password and signs in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		now := time.Now()
		user := &models.User{ID: primitive.NewObjectID(), PasswordResetToken: auth.HashToken("plain")}

		d.users.EXPECT().FindByResetToken(ctx, auth.HashToken("plain"), now).Return(user, nil)
		d.users.EXPECT().
			SetPassword(ctx, user.ID, gomock.Any(), now.Add(-time.Second)).
			DoAndReturn(func(_ context.Context, _ primitive.ObjectID, hash string, _ time.Time) error {
				assert.NoError(t, auth.CheckPassword("newpass123", hash))
				return nil
			})
		d.cache.EXPECT().Delete(ctx, "user:"+user.ID.Hex()).Return(nil)
		d.jwt.EXPECT().GenerateToken(user.ID.Hex()).Return("fresh-token", nil)

		svc := d.service(false)
		svc.now = func() time.Time { return now }
		result, err := svc.ResetPassword(ctx, "plain", req)

		require.NoError(t, err)
		assert.Equal(t, "fresh-token", result.Token)
		assert.Empty(t, result.User.PasswordResetToken)
		require.NotNil(t, result.User.PasswordChangedAt)
	})

	t.Run("invalid or expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.users.EXPECT().FindByResetToken(ctx, gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrDocumentNotFound)

		_, err := d.service(false).ResetPassword(ctx, "stale", req)

		assert.ErrorIs(t, err, apperrors.ErrResetTokenInvalid)
	})
}

func TestAuthService_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	userID := primitive.NewObjectID()

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.users.EXPECT().FindByID(ctx, userID).Return(&models.User{ID: userID, Password: hashed(t, "pass1234")}, nil)

		_, err := d.service(false).UpdatePassword(ctx, userID, &models.UpdatePasswordRequest{
			PasswordCurrent: "nottheone",
			Password:        "newpass123",
			PasswordConfirm: "newpass123",
		})

		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
	})

	t.Run("changes password and issues a new token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		d := newAuthDeps(ctrl)
		d.users.EXPECT().FindByID(ctx, userID).Return(&models.User{ID: userID, Password: hashed(t, "pass1234")}, nil)
		d.users.EXPECT().SetPassword(ctx, userID, gomock.Any(), gomock.Any()).Return(nil)
		d.cache.EXPECT().Delete(ctx, "user:"+userID.Hex()).Return(nil)
		d.jwt.EXPECT().GenerateToken(userID.Hex()).Return("fresh-token", nil)

		result, err := d.service(false).UpdatePassword(ctx, userID, &models.UpdatePasswordRequest{
			PasswordCurrent: "pass1234",
			Password:        "newpass123",
			PasswordConfirm: "newpass123",
		})

		require.NoError(t, err)
		assert.Equal(t, "fresh-token", result.Token)
	})
}
