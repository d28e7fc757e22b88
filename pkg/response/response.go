// Package response provides standard API response helpers.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Status values of the envelope.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

// Response is the standard API response format.
type Response struct {
	Status  string      `json:"status" example:"success"`
	Results *int        `json:"results,omitempty" example:"9"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Payload wraps a document under "data", matching {data: {data: ...}}.
type Payload struct {
	Data interface{} `json:"data"`
}

// UserPayload wraps the signed-in user after signup and login.
type UserPayload struct {
	User interface{} `json:"user"`
}

// StatusText is "fail" for client errors and "error" otherwise.
func StatusText(status int) string {
	if status >= 400 && status < 500 {
		return StatusFail
	}
	return StatusError
}

// Success sends a single document.
func Success(c *gin.Context, doc interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: StatusSuccess,
		Data:   Payload{Data: doc},
	})
}

// Created sends a 201 response with the new document.
func Created(c *gin.Context, doc interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status: StatusSuccess,
		Data:   Payload{Data: doc},
	})
}

// List sends a collection with its result count.
func List[T any](c *gin.Context, docs []T) {
	if docs == nil {
		docs = []T{}
	}
	n := len(docs)
	c.JSON(http.StatusOK, Response{
		Status:  StatusSuccess,
		Results: &n,
		Data:    Payload{Data: docs},
	})
}

// Named sends a value under its own key inside data, as in
// {data: {stats: [...]}}.
func Named(c *gin.Context, key string, value interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: StatusSuccess,
		Data:   map[string]interface{}{key: value},
	})
}

// Token sends a session token together with the signed-in user.
func Token(c *gin.Context, status int, token string, user interface{}) {
	c.JSON(status, Response{
		Status: StatusSuccess,
		Token:  token,
		Data:   UserPayload{User: user},
	})
}

// OK sends a bare success status.
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Status: StatusSuccess})
}

// Message sends a success status with a message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Status: StatusSuccess, Message: message})
}

// NoContent sends a 204 No Content response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Status:  StatusText(status),
		Message: message,
	})
}
