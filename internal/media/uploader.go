package media

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"tourbook/internal/storage"

	"go.uber.org/zap"
)

// Storage folders.
const (
	FolderUsers = "img/users"
	FolderTours = "img/tours"
)

// Uploader resizes images and writes them to object storage.
type Uploader struct {
	processor *Processor
	store     storage.Storage
	log       *zap.Logger
}

// NewUploader creates an uploader backed by store.
func NewUploader(processor *Processor, store storage.Storage, log *zap.Logger) *Uploader {
	return &Uploader{processor: processor, store: store, log: log}
}

// Store resizes buf and saves it as folder/name. It returns name, which is
// what documents keep in their photo and image fields.
func (u *Uploader) Store(ctx context.Context, folder, name string, buf []byte, c Constraints) (string, error) {
	resized, err := u.processor.Resize(buf, c)
	if err != nil {
		return "", err
	}

	key := path.Join(folder, name)
	if err := u.store.PutObject(ctx, key, bytes.NewReader(resized), "image/jpeg"); err != nil {
		return "", err
	}

	u.log.Debug("Image stored", zap.String("key", key), zap.Int("bytes", len(resized)))
	return name, nil
}

// UserPhotoName names a user photo upload.
func UserPhotoName(userID string, now time.Time) string {
	return fmt.Sprintf("user-%s-%d.jpeg", userID, now.UnixMilli())
}

// TourCoverName names a tour cover upload.
func TourCoverName(tourID string, now time.Time) string {
	return fmt.Sprintf("tour-%s-%d-cover.jpeg", tourID, now.UnixMilli())
}

// TourImageName names the n-th (1-based) tour gallery image.
func TourImageName(tourID string, now time.Time, n int) string {
	return fmt.Sprintf("tour-%s-%d-%d.jpeg", tourID, now.UnixMilli(), n)
}
