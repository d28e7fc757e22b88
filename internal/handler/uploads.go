package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/media"

	"github.com/gin-gonic/gin"
)

// Images resizes and stores multipart image uploads. A nil uploader means
// storage is not configured; requests without files still succeed.
type Images struct {
	uploader *media.Uploader
	now      func() time.Time
}

// NewImages creates an upload helper.
func NewImages(uploader *media.Uploader) *Images {
	return &Images{uploader: uploader, now: time.Now}
}

// read returns the contents of up to limit files of a multipart field.
// Anything that is not declared as an image is rejected.
func (i *Images) read(c *gin.Context, field string, limit int) ([][]byte, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}

	headers := form.File[field]
	if len(headers) > limit {
		return nil, apperrors.Operational(http.StatusBadRequest, fmt.Sprintf("Too many files for %s, at most %d allowed.", field, limit), nil)
	}

	files := make([][]byte, 0, len(headers))
	for _, fh := range headers {
		if !media.IsImage(fh.Header.Get("Content-Type")) {
			return nil, apperrors.ErrNotAnImage
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		buf, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, buf)
	}
	if len(files) > 0 && i.uploader == nil {
		return nil, apperrors.ErrUploadsDisabled
	}
	return files, nil
}

// UserPhoto stores the "photo" upload for userID. It returns "" when the
// request carried no photo.
func (i *Images) UserPhoto(c *gin.Context, userID string) (string, error) {
	files, err := i.read(c, "photo", 1)
	if err != nil || len(files) == 0 {
		return "", err
	}
	return i.uploader.Store(c.Request.Context(), media.FolderUsers, media.UserPhotoName(userID, i.now()), files[0], media.UserPhoto)
}

// TourImages stores the "imageCover" and up to three "images" uploads for
// tourID. Empty results mean the field was not sent.
func (i *Images) TourImages(c *gin.Context, tourID string) (cover string, images []string, err error) {
	covers, err := i.read(c, "imageCover", 1)
	if err != nil {
		return "", nil, err
	}
	gallery, err := i.read(c, "images", 3)
	if err != nil {
		return "", nil, err
	}

	now := i.now()
	ctx := c.Request.Context()
	if len(covers) > 0 {
		cover, err = i.uploader.Store(ctx, media.FolderTours, media.TourCoverName(tourID, now), covers[0], media.TourImage)
		if err != nil {
			return "", nil, err
		}
	}
	for n, buf := range gallery {
		name, err := i.uploader.Store(ctx, media.FolderTours, media.TourImageName(tourID, now, n+1), buf, media.TourImage)
		if err != nil {
			return "", nil, err
		}
		images = append(images, name)
	}
	return cover, images, nil
}
