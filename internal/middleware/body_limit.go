package middleware

import (
	"net/http"
	"strings"

	apperrors "tourbook/internal/errors"

	"github.com/gin-gonic/gin"
)

// DefaultJSONLimit caps JSON request bodies.
const DefaultJSONLimit = 10 << 10

// BodyLimit caps request bodies: multipart uploads at uploadMax bytes,
// everything else at jsonMax bytes.
func BodyLimit(jsonMax, uploadMax int64) gin.HandlerFunc {
	if jsonMax <= 0 {
		jsonMax = DefaultJSONLimit
	}

	return func(c *gin.Context) {
		limit := jsonMax
		if strings.HasPrefix(c.ContentType(), "multipart/") && uploadMax > 0 {
			limit = uploadMax
		}

		if c.Request.ContentLength > limit {
			_ = c.Error(apperrors.Operational(http.StatusRequestEntityTooLarge, "Request body too large", nil))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
