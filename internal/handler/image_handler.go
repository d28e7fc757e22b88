package handler

import (
	"net/http"
	"path"
	"strings"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/storage"

	"github.com/gin-gonic/gin"
)

// imageLinkTTL bounds how long a redirect target stays valid.
const imageLinkTTL = 15 * time.Minute

// ImageHandler serves stored images by redirecting to short-lived
// download links.
type ImageHandler struct {
	store storage.Storage
}

// NewImageHandler creates a new ImageHandler. A nil store answers 404.
func NewImageHandler(store storage.Storage) *ImageHandler {
	return &ImageHandler{store: store}
}

// Serve redirects /img/<folder>/<name> to the object with the same key.
func (h *ImageHandler) Serve(c *gin.Context) {
	name := path.Clean("/" + c.Param("filepath"))
	if h.store == nil || name == "/" || strings.Contains(name, "..") {
		abort(c, apperrors.NotFound("Image not found."))
		return
	}

	link, err := h.store.GetPresignedURL(c.Request.Context(), path.Join("img", name), imageLinkTTL)
	if err != nil {
		abort(c, err)
		return
	}

	c.Redirect(http.StatusFound, link)
}
