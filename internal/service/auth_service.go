package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"tourbook/internal/cache"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/mailer"
	"tourbook/internal/models"
	"tourbook/internal/queue"
	"tourbook/internal/repository"
	"tourbook/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ResetPasswordPath is where emailed reset tokens are submitted.
const ResetPasswordPath = "/api/v1/users/resetPassword/"

// AuthResult is a signed-in user with a fresh session token.
type AuthResult struct {
	Token string
	User  *models.User
}

// AuthService handles authentication business logic.
type AuthService struct {
	userRepo   repository.UserRepository
	cache      cache.Cache
	denylist   cache.TokenDenylist
	jwtManager auth.TokenManager
	mailer     mailer.Mailer
	emails     queue.Poster
	log        *zap.Logger
	now        func() time.Time
}

// AuthServiceConfig holds configuration for AuthService. Denylist is nil
// unless logout revokes tokens server-side.
type AuthServiceConfig struct {
	UserRepo   repository.UserRepository
	Cache      cache.Cache
	Denylist   cache.TokenDenylist
	JWTManager auth.TokenManager
	Mailer     mailer.Mailer
	EmailQueue queue.Poster
	Logger     *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	c := cfg.Cache
	if c == nil {
		c = cache.Noop{}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthService{
		userRepo:   cfg.UserRepo,
		cache:      c,
		denylist:   cfg.Denylist,
		jwtManager: cfg.JWTManager,
		mailer:     cfg.Mailer,
		emails:     cfg.EmailQueue,
		log:        log,
		now:        time.Now,
	}
}

// Signup creates a new account, queues the welcome email and signs the
// user in.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest, accountURL string) (*AuthResult, error) {
	user := req.ToModel()

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashedPassword

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.emails != nil {
		msg := mailer.Message{
			Template: mailer.TemplateWelcome,
			To:       user.Email,
			Name:     user.Name,
			URL:      accountURL,
		}
		if err := s.emails.Post(msg); err != nil {
			s.log.Warn("Welcome email not queued", zap.String("to", user.Email), zap.Error(err))
		}
	}

	return s.issue(user)
}

// Login checks email and password.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*AuthResult, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Authenticate resolves a session token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrNotLoggedIn
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil, apperrors.Translate(err)
	}

	if s.denylist != nil {
		revoked, err := s.denylist.IsRevoked(ctx, auth.HashToken(token))
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, apperrors.ErrTokenRevoked
		}
	}

	user, err := s.loadUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if user.ChangedPasswordAfter(claims.Issued()) {
		return nil, apperrors.ErrPasswordChanged
	}

	return user, nil
}

// loadUser reads the token owner through the user cache.
func (s *AuthService) loadUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserGone
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil // Cache hit
	}

	// Cache miss - get from database
	dbUser, err := s.userRepo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return nil, apperrors.ErrUserGone
		}
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, cache.UserCacheTTL)

	return dbUser, nil
}

// Logout revokes the token for its remaining lifetime when server-side
// revocation is enabled. It never fails on a bad token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if s.denylist == nil || token == "" {
		return nil
	}

	claims, err := s.jwtManager.ValidateToken(token)
	if err != nil {
		return nil
	}

	return s.denylist.Revoke(ctx, auth.HashToken(token), claims.Expires().Sub(s.now()))
}

// ForgotPassword stores a reset token and emails it. The email is sent
// synchronously; if delivery fails the token is withdrawn.
func (s *AuthService) ForgotPassword(ctx context.Context, email, baseURL string) error {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return apperrors.ErrNoUserWithEmail
		}
		return err
	}

	token, err := auth.NewResetToken(s.now())
	if err != nil {
		return err
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, token.Hash, token.ExpiresAt); err != nil {
		return err
	}

	msg := mailer.Message{
		Template: mailer.TemplatePasswordReset,
		To:       user.Email,
		Name:     user.Name,
		URL:      baseURL + ResetPasswordPath + token.Plain,
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error("Password reset email failed", zap.String("to", user.Email), zap.Error(err))
		if clearErr := s.userRepo.ClearResetToken(ctx, user.ID); clearErr != nil {
			s.log.Error("Failed to withdraw reset token", zap.String("user", user.ID.Hex()), zap.Error(clearErr))
		}
		return apperrors.ErrEmailDelivery
	}

	return nil
}

// ResetPassword sets a new password for the owner of a valid reset token.
func (s *AuthService) ResetPassword(ctx context.Context, token string, req *models.ResetPasswordRequest) (*AuthResult, error) {
	now := s.now()

	user, err := s.userRepo.FindByResetToken(ctx, auth.HashToken(token), now)
	if err != nil {
		if errors.Is(err, apperrors.ErrDocumentNotFound) {
			return nil, apperrors.ErrResetTokenInvalid
		}
		return nil, err
	}

	if err := s.setPassword(ctx, user, req.Password, now); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// UpdatePassword changes the password of a signed-in user after checking
// the current one.
func (s *AuthService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) (*AuthResult, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := auth.CheckPassword(req.PasswordCurrent, user.Password); err != nil {
		return nil, apperrors.ErrWrongPassword
	}

	if err := s.setPassword(ctx, user, req.Password, s.now()); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// setPassword stores a new hash. The change is stamped one second in the
// past so a token issued right after is not rejected.
func (s *AuthService) setPassword(ctx context.Context, user *models.User, password string, now time.Time) error {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	changedAt := now.Add(-time.Second)
	if err := s.userRepo.SetPassword(ctx, user.ID, hashedPassword, changedAt); err != nil {
		return err
	}

	user.Password = hashedPassword
	user.PasswordChangedAt = &changedAt
	user.PasswordResetToken = ""
	user.PasswordResetExpires = nil

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(user.ID.Hex()))
	return nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.jwtManager.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}
