package media

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"tourbook/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestUploader_Store(t *testing.T) {
	ctx := context.Background()

	t.Run("resizes and stores under folder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().
			PutObject(ctx, "img/users/user-1-5.jpeg", gomock.Any(), "image/jpeg").
			DoAndReturn(func(_ context.Context, _ string, body io.Reader, _ string) error {
				data, err := io.ReadAll(body)
				require.NoError(t, err)
				assert.NotEmpty(t, data)
				return nil
			})

		u := NewUploader(NewProcessor(), store, zap.NewNop())
		name, err := u.Store(ctx, FolderUsers, "user-1-5.jpeg", encodePNG(t, 40, 40), UserPhoto)

		require.NoError(t, err)
		assert.Equal(t, "user-1-5.jpeg", name)
	})

	t.Run("does not store undecodable uploads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)

		u := NewUploader(NewProcessor(), store, zap.NewNop())
		_, err := u.Store(ctx, FolderTours, "x.jpeg", []byte("nope"), TourImage)

		require.Error(t, err)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := mocks.NewMockStorage(ctrl)
		store.EXPECT().PutObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bucket missing"))

		u := NewUploader(NewProcessor(), store, zap.NewNop())
		_, err := u.Store(ctx, FolderTours, "x.jpeg", encodePNG(t, 10, 10), Constraints{Width: 5, Height: 5})

		assert.EqualError(t, err, "bucket missing")
	})
}

func TestFileNames(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	assert.Equal(t, "user-abc-1700000000123.jpeg", UserPhotoName("abc", now))
	assert.Equal(t, "tour-t1-1700000000123-cover.jpeg", TourCoverName("t1", now))
	assert.Equal(t, "tour-t1-1700000000123-2.jpeg", TourImageName("t1", now, 2))
}
