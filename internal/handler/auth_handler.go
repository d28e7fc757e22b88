package handler

import (
	"net/http"
	"strings"
	"time"

	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// LoggedOutValue replaces the session cookie on logout.
const LoggedOutValue = "loggedout"

const loggedOutTTL = 10 * time.Second

// SessionCookies writes and clears the session cookie.
type SessionCookies struct {
	Lifetime   time.Duration
	Production bool
}

// secure reports whether the cookie may only travel over HTTPS.
func (s SessionCookies) secure(c *gin.Context) bool {
	return s.Production || c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https")
}

// Set sends the session token as an http-only cookie.
func (s SessionCookies) Set(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.Lifetime),
		HttpOnly: true,
		Secure:   s.secure(c),
	})
}

// Clear overwrites the session cookie with a short-lived placeholder.
func (s SessionCookies) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    LoggedOutValue,
		Path:     "/",
		Expires:  time.Now().Add(loggedOutTTL),
		HttpOnly: true,
		Secure:   s.secure(c),
	})
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service service.AuthServicer
	cookies SessionCookies
	baseURL string
}

// NewAuthHandler creates a new AuthHandler. baseURL is the public origin
// used in emailed links.
func NewAuthHandler(service service.AuthServicer, cookies SessionCookies, baseURL string) *AuthHandler {
	return &AuthHandler{service: service, cookies: cookies, baseURL: strings.TrimRight(baseURL, "/")}
}

// sendToken sets the cookie and answers with the token and the user.
func (h *AuthHandler) sendToken(c *gin.Context, status int, result *service.AuthResult) {
	h.cookies.Set(c, result.Token)
	response.Token(c, status, result.Token, result.User)
}

// Signup godoc
// @Summary      Sign up
// @Description  Create an account and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.SignupRequest  true  "Account details"
// @Success      201      {object}  response.Response{data=response.UserPayload}
// @Failure      400      {object}  response.Response
// @Router       /users/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Signup(c.Request.Context(), &req, h.baseURL+"/me")
	if err != nil {
		abort(c, err)
		return
	}

	h.sendToken(c, http.StatusCreated, result)
}

// Login godoc
// @Summary      Log in
// @Description  Check email and password and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.Response{data=response.UserPayload}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		abort(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, result)
}

// Logout godoc
// @Summary      Log out
// @Description  Replace the session cookie; optionally revoke the token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /users/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.TokenFromRequest(c)); err != nil {
		abort(c, err)
		return
	}

	h.cookies.Clear(c)
	response.OK(c)
}

// ForgotPassword godoc
// @Summary      Forgot password
// @Description  Email a password reset link valid for 10 minutes
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /users/forgotPassword [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), req.Email, h.baseURL); err != nil {
		abort(c, err)
		return
	}

	response.Message(c, "Token sent to email!")
}

// ResetPassword godoc
// @Summary      Reset password
// @Description  Set a new password with an emailed reset token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token    path      string                       true  "Reset token"
// @Param        request  body      models.ResetPasswordRequest  true  "New password"
// @Success      200      {object}  response.Response{data=response.UserPayload}
// @Failure      400      {object}  response.Response
// @Router       /users/resetPassword/{token} [patch]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.ResetPassword(c.Request.Context(), c.Param("token"), &req)
	if err != nil {
		abort(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, result)
}

// UpdatePassword godoc
// @Summary      Update my password
// @Description  Change the password of the signed-in user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.UpdatePasswordRequest  true  "Current and new password"
// @Success      200      {object}  response.Response{data=response.UserPayload}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/updateMyPassword [patch]
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	user := requireUser(c)
	if user == nil {
		return
	}

	result, err := h.service.UpdatePassword(c.Request.Context(), user.ID, &req)
	if err != nil {
		abort(c, err)
		return
	}

	h.sendToken(c, http.StatusOK, result)
}
