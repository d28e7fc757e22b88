package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"tourbook/internal/config"
	apperrors "tourbook/internal/errors"
	"tourbook/internal/logger"
	"tourbook/internal/views"
	"tourbook/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// errorBody is the API error envelope.
type errorBody struct {
	Status  string       `json:"status"`
	Error   *errorDetail `json:"error,omitempty"`
	Message string       `json:"message"`
	Stack   string       `json:"stack,omitempty"`
}

type errorDetail struct {
	Kind    apperrors.Kind `json:"kind"`
	Status  int            `json:"statusCode"`
	Message string         `json:"message"`
}

// ErrorHandler renders the last error a handler attached with c.Error.
// API paths get JSON; pages get the error page. Outside development only
// operational messages reach the client.
func ErrorHandler(env string, log *zap.Logger) gin.HandlerFunc {
	production := env == config.EnvProduction

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperrors.Translate(c.Errors.Last().Err)
		reqLog := logger.WithRequestID(log, GetRequestID(c))
		if appErr.Operational() {
			reqLog.Debug("Request failed", zap.String("kind", string(appErr.Kind)), zap.Error(appErr))
		} else {
			reqLog.Error("Unexpected error", zap.Error(appErr), zap.String("stack", appErr.Stack()))
		}

		if isAPI(c) {
			c.JSON(appErr.Status, apiError(appErr, production))
			return
		}

		msg := appErr.Message
		if production && !appErr.Operational() {
			msg = "Please try again later."
		}
		c.HTML(appErr.Status, views.PageError, gin.H{
			"Title": "Something went wrong!",
			"Msg":   msg,
			"User":  CurrentUser(c),
		})
	}
}

func apiError(appErr *apperrors.AppError, production bool) errorBody {
	if production {
		if !appErr.Operational() {
			return errorBody{Status: response.StatusError, Message: appErr.Message}
		}
		return errorBody{Status: appErr.StatusText(), Message: appErr.Message}
	}

	return errorBody{
		Status:  appErr.StatusText(),
		Error:   &errorDetail{Kind: appErr.Kind, Status: appErr.Status, Message: appErr.Error()},
		Message: appErr.Message,
		Stack:   appErr.Stack(),
	}
}

func isAPI(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api")
}

// Recovery turns a panic into an internal error for ErrorHandler.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if err, ok := r.(error); ok && err == http.ErrAbortHandler {
					panic(r)
				}
				_ = c.Error(apperrors.Internal(fmt.Errorf("panic: %v", r)))
				c.Abort()
			}
		}()
		c.Next()
	}
}
