package handler

import (
	"net/http"
	"net/url"

	"tourbook/internal/authz"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"
	"tourbook/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ViewHandler renders the server-side pages.
type ViewHandler struct {
	tours      service.TourServicer
	bookings   service.BookingServicer
	users      service.UserServicer
	auth       service.AuthServicer
	authorizer authz.Authorizer
	cookies    SessionCookies
	images     *Images
	baseURL    string
}

// ViewHandlerConfig holds the collaborators of ViewHandler.
type ViewHandlerConfig struct {
	Tours      service.TourServicer
	Bookings   service.BookingServicer
	Users      service.UserServicer
	Auth       service.AuthServicer
	Authorizer authz.Authorizer
	Cookies    SessionCookies
	Images     *Images
	BaseURL    string
}

// NewViewHandler creates a new ViewHandler.
func NewViewHandler(cfg ViewHandlerConfig) *ViewHandler {
	return &ViewHandler{
		tours:      cfg.Tours,
		bookings:   cfg.Bookings,
		users:      cfg.Users,
		auth:       cfg.Auth,
		authorizer: cfg.Authorizer,
		cookies:    cfg.Cookies,
		images:     cfg.Images,
		baseURL:    cfg.BaseURL,
	}
}

// render executes a page with the signed-in user added to data.
func render(c *gin.Context, status int, page, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["User"] = middleware.CurrentUser(c)
	c.HTML(status, page, data)
}

// Overview shows every tour.
func (h *ViewHandler) Overview(c *gin.Context) {
	tours, err := h.tours.List(c.Request.Context(), url.Values{}, nil)
	if err != nil {
		abort(c, err)
		return
	}

	render(c, http.StatusOK, views.PageOverview, "All Tours", gin.H{"Tours": tours})
}

// Tour shows one tour with its guides and reviews.
func (h *ViewHandler) Tour(c *gin.Context) {
	tour, err := h.tours.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		abort(c, err)
		return
	}

	render(c, http.StatusOK, views.PageTour, tour.Name+" Tour", gin.H{"Tour": tour})
}

// LoginForm shows the login form.
func (h *ViewHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, views.PageLogin, "Log into your account", nil)
}

// Login signs in from the form and redirects to the overview.
func (h *ViewHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	_ = c.ShouldBindWith(&req, binding.Form)

	result, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		h.formError(c, views.PageLogin, "Log into your account", err)
		return
	}

	h.cookies.Set(c, result.Token)
	c.Redirect(http.StatusSeeOther, "/")
}

// SignupForm shows the signup form.
func (h *ViewHandler) SignupForm(c *gin.Context) {
	render(c, http.StatusOK, views.PageSignup, "Create your account", nil)
}

// Signup creates an account from the form and redirects to the account
// page.
func (h *ViewHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		h.formError(c, views.PageSignup, "Create your account", err)
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), &req, h.baseURL+"/me")
	if err != nil {
		h.formError(c, views.PageSignup, "Create your account", err)
		return
	}

	h.cookies.Set(c, result.Token)
	c.Redirect(http.StatusSeeOther, "/me")
}

// formError shows a client error next to the form it came from. Server
// errors go to the error page.
func (h *ViewHandler) formError(c *gin.Context, page, title string, err error) {
	appErr := apperrors.Translate(err)
	if !appErr.Operational() || appErr.Status >= http.StatusInternalServerError {
		abort(c, err)
		return
	}
	render(c, appErr.Status, page, title, gin.H{"Error": appErr.Message})
}

// Account shows the settings of the signed-in user.
func (h *ViewHandler) Account(c *gin.Context) {
	h.account(c, "")
}

func (h *ViewHandler) account(c *gin.Context, message string) {
	user := requireUser(c)
	if user == nil {
		return
	}

	render(c, http.StatusOK, views.PageAccount, "Your account", gin.H{
		"CanManageTours": h.authorizer.CanPerform(user.Role, authz.ActionTourWrite),
		"Message":        message,
	})
}

// UpdateUserData saves the account form, including an optional photo.
func (h *ViewHandler) UpdateUserData(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req models.UpdateMeRequest
	if !bindBody(c, &req) {
		return
	}
	// The account form never sends passwords.
	req.Password, req.PasswordConfirm = nil, nil

	photo, err := h.images.UserPhoto(c, user.ID.Hex())
	if err != nil {
		abort(c, err)
		return
	}
	req.Photo = photo

	updated, err := h.users.UpdateMe(c.Request.Context(), user.ID, &req)
	if err != nil {
		abort(c, err)
		return
	}

	c.Set(middleware.UserKey, updated)
	h.account(c, "Your settings were updated.")
}

// MyTours shows the tours the signed-in user has booked.
func (h *ViewHandler) MyTours(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	tours, err := h.bookings.MyTours(c.Request.Context(), user.ID)
	if err != nil {
		abort(c, err)
		return
	}

	render(c, http.StatusOK, views.PageOverview, "My Tours", gin.H{"Tours": tours})
}
