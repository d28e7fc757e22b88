package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	storagemocks "tourbook/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestImageHandler_Serve(t *testing.T) {
	t.Run("redirects to a presigned link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		store.EXPECT().
			GetPresignedURL(gomock.Any(), "img/users/user-1.jpg", imageLinkTTL).
			Return("https://bucket.example/img/users/user-1.jpg?sig=1", nil)

		router := newTestRouter(nil)
		router.GET("/img/*filepath", NewImageHandler(store).Serve)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/img/users/user-1.jpg", nil))

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://bucket.example/img/users/user-1.jpg?sig=1", w.Header().Get("Location"))
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := storagemocks.NewMockStorage(ctrl)
		store.EXPECT().
			GetPresignedURL(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("endpoint unreachable"))

		router := newTestRouter(nil)
		router.GET("/img/*filepath", NewImageHandler(store).Serve)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/img/tours/tour-1-cover.jpg", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no storage configured", func(t *testing.T) {
		router := newTestRouter(nil)
		router.GET("/img/*filepath", NewImageHandler(nil).Serve)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/img/users/default.jpg", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
