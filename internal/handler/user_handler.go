package handler

import (
	"tourbook/internal/models"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations. Administrative
// CRUD comes from the embedded ResourceHandler.
type UserHandler struct {
	*ResourceHandler[models.User]
	service service.UserServicer
	images  *Images
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer, images *Images) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler[models.User](
			service,
			nil,
			func() models.Patch { return &models.UpdateUserRequest{} },
		),
		service: service,
		images:  images,
	}
}

// GetMe godoc
// @Summary      Get my account
// @Description  Return the signed-in user
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response{data=response.Payload{data=models.User}}
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	me, err := h.service.Get(c.Request.Context(), user.ID.Hex())
	if err != nil {
		abort(c, err)
		return
	}

	response.Success(c, me)
}

// UpdateMe godoc
// @Summary      Update my account
// @Description  Change name, email or photo of the signed-in user. Accepts JSON or multipart with a "photo" file.
// @Tags         users
// @Accept       json,mpfd
// @Produce      json
// @Param        request  body      models.UpdateMeRequest  true  "Profile changes"
// @Success      200      {object}  response.Response{data=response.Payload{data=models.User}}
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/updateMe [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	var req models.UpdateMeRequest
	if !bindBody(c, &req) {
		return
	}

	// Rejected before any upload is stored.
	if !req.TouchesPassword() {
		photo, err := h.images.UserPhoto(c, user.ID.Hex())
		if err != nil {
			abort(c, err)
			return
		}
		req.Photo = photo
	}

	updated, err := h.service.UpdateMe(c.Request.Context(), user.ID, &req)
	if err != nil {
		abort(c, err)
		return
	}

	response.Success(c, updated)
}

// DeleteMe godoc
// @Summary      Deactivate my account
// @Description  Mark the signed-in user inactive
// @Tags         users
// @Success      204
// @Failure      401  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/deleteMe [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	user := requireUser(c)
	if user == nil {
		return
	}

	if err := h.service.DeleteMe(c.Request.Context(), user.ID); err != nil {
		abort(c, err)
		return
	}

	response.NoContent(c)
}

// CreateOne godoc
// @Summary      Create user
// @Description  Not supported; accounts are created through signup
// @Tags         users
// @Produce      json
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) CreateOne(c *gin.Context) {
	created, err := h.service.Create(c.Request.Context(), &models.User{})
	if err != nil {
		abort(c, err)
		return
	}

	response.Created(c, created)
}

// GetAll godoc
// @Summary      List users
// @Description  Active accounts only
// @Tags         users
// @Produce      json
// @Param        role  query     string  false  "Filter by role"
// @Success      200   {object}  response.Response{data=response.Payload{data=[]models.User}}
// @Failure      403   {object}  response.Response
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	h.ResourceHandler.GetAll(c)
}

// GetOne godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=response.Payload{data=models.User}}
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetOne(c *gin.Context) {
	h.ResourceHandler.GetOne(c)
}

// UpdateOne godoc
// @Summary      Update user
// @Description  Passwords cannot be changed here
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "User ID"
// @Param        request  body      models.UpdateUserRequest  true  "User changes"
// @Success      200      {object}  response.Response{data=response.Payload{data=models.User}}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [patch]
func (h *UserHandler) UpdateOne(c *gin.Context) {
	h.ResourceHandler.UpdateOne(c)
}

// DeleteOne godoc
// @Summary      Delete user
// @Tags         users
// @Param        id   path      string  true  "User ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteOne(c *gin.Context) {
	h.ResourceHandler.DeleteOne(c)
}
