// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"strings"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/middleware"
	"tourbook/internal/models"
	"tourbook/internal/service"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.mongodb.org/mongo-driver/bson"
)

// ResourceHandler serves the generic CRUD routes of one entity type.
type ResourceHandler[T any] struct {
	service      service.Resource[T]
	newCreate    func() models.Creatable[T]
	newPatch     func() models.Patch
	scope        func(c *gin.Context) (bson.M, error)
	beforeCreate func(c *gin.Context, doc *T) error
}

// ResourceOption customizes a ResourceHandler.
type ResourceOption[T any] func(*ResourceHandler[T])

// WithScope restricts GetAll to the filter built from the request, used by
// nested routes such as /tours/:tourId/reviews.
func WithScope[T any](fn func(c *gin.Context) (bson.M, error)) ResourceOption[T] {
	return func(h *ResourceHandler[T]) {
		h.scope = fn
	}
}

// WithBeforeCreate lets a route fill fields of a new document from the
// request context.
func WithBeforeCreate[T any](fn func(c *gin.Context, doc *T) error) ResourceOption[T] {
	return func(h *ResourceHandler[T]) {
		h.beforeCreate = fn
	}
}

// NewResourceHandler creates a new ResourceHandler. newCreate and newPatch
// return empty request payloads to bind into.
func NewResourceHandler[T any](
	svc service.Resource[T],
	newCreate func() models.Creatable[T],
	newPatch func() models.Patch,
	opts ...ResourceOption[T],
) *ResourceHandler[T] {
	h := &ResourceHandler[T]{
		service:   svc,
		newCreate: newCreate,
		newPatch:  newPatch,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// GetAll lists documents filtered, sorted, projected and paginated by the
// query string.
func (h *ResourceHandler[T]) GetAll(c *gin.Context) {
	var scope bson.M
	if h.scope != nil {
		var err error
		if scope, err = h.scope(c); err != nil {
			abort(c, err)
			return
		}
	}

	docs, err := h.service.List(c.Request.Context(), c.Request.URL.Query(), scope)
	if err != nil {
		abort(c, err)
		return
	}

	response.List(c, docs)
}

// GetOne returns the document with the :id path parameter.
func (h *ResourceHandler[T]) GetOne(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abort(c, err)
		return
	}

	response.Success(c, doc)
}

// CreateOne validates the body and stores a new document.
func (h *ResourceHandler[T]) CreateOne(c *gin.Context) {
	req := h.newCreate()
	if !bindJSON(c, req) {
		return
	}

	doc := req.ToModel()
	if h.beforeCreate != nil {
		if err := h.beforeCreate(c, doc); err != nil {
			abort(c, err)
			return
		}
	}

	created, err := h.service.Create(c.Request.Context(), doc)
	if err != nil {
		abort(c, err)
		return
	}

	response.Created(c, created)
}

// UpdateOne applies a partial update to the document with the :id path
// parameter.
func (h *ResourceHandler[T]) UpdateOne(c *gin.Context) {
	patch := h.newPatch()
	if !bindJSON(c, patch) {
		return
	}

	doc, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		abort(c, err)
		return
	}

	response.Success(c, doc)
}

// DeleteOne removes the document with the :id path parameter.
func (h *ResourceHandler[T]) DeleteOne(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abort(c, err)
		return
	}

	response.NoContent(c)
}

// requireUser returns the signed-in user, recording ErrNotLoggedIn when
// the route was reached without one.
func requireUser(c *gin.Context) *models.User {
	user := middleware.CurrentUser(c)
	if user == nil {
		abort(c, apperrors.ErrNotLoggedIn)
	}
	return user
}

// abort hands err to the error middleware and stops the chain.
func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON binds and validates the JSON body into req. An empty body binds
// nothing but is still validated, so required fields are reported. On
// failure the error is recorded and false returned.
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(req)
	}
	if err != nil {
		abort(c, err)
		return false
	}
	return true
}

// bindBody binds multipart forms with the form binding and everything else
// as JSON.
func bindBody(c *gin.Context, req interface{}) bool {
	if !isMultipart(c) {
		return bindJSON(c, req)
	}
	if err := c.ShouldBindWith(req, binding.FormMultipart); err != nil {
		abort(c, err)
		return false
	}
	return true
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), binding.MIMEMultipartPOSTForm)
}
