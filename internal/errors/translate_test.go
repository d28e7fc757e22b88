package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestTranslate(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Translate(nil))
	})

	t.Run("app errors pass through", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", ErrForbidden)

		assert.Same(t, ErrForbidden, Translate(wrapped))
	})

	t.Run("duplicate key errors become duplicate", func(t *testing.T) {
		err := mongo.WriteException{WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: `E11000 duplicate key error collection: natours.tours index: name_1 dup key: { name: "The Forest Hiker" }`,
		}}}

		got := Translate(err)

		assert.Equal(t, KindDuplicate, got.Kind)
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, `Duplicate field value: "The Forest Hiker". Please use another value!`, got.Message)
	})

	t.Run("unquoted duplicate values are kept raw", func(t *testing.T) {
		err := mongo.WriteException{WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: `E11000 duplicate key error collection: natours.reviews index: tour_1_user_1 dup key: { tour: ObjectId('5c88fa8cf4afda39709c2951'), user: ObjectId('5c8a1d5b0190b214360dc057') }`,
		}}}

		got := Translate(err)

		assert.Equal(t, KindDuplicate, got.Kind)
		assert.Contains(t, got.Message, "tour: ObjectId('5c88fa8cf4afda39709c2951')")
	})

	t.Run("validator errors become validation", func(t *testing.T) {
		type input struct {
			Name  string `validate:"required"`
			Price int    `validate:"gte=0"`
		}
		err := validator.New().Struct(input{Price: -1})
		require.Error(t, err)

		got := Translate(err)

		assert.Equal(t, KindValidation, got.Kind)
		assert.Equal(t, "Invalid input data. Name is required. Price must be at least 0", got.Message)
	})

	t.Run("invalid hex becomes cast", func(t *testing.T) {
		_, err := primitive.ObjectIDFromHex("wrong-id")

		got := Translate(err)

		assert.Equal(t, KindCast, got.Kind)
		assert.Equal(t, http.StatusBadRequest, got.Status)
	})

	t.Run("json type errors become cast", func(t *testing.T) {
		var body struct {
			Price float64 `json:"price"`
		}
		err := json.Unmarshal([]byte(`{"price":"cheap"}`), &body)

		got := Translate(err)

		assert.Equal(t, KindCast, got.Kind)
		assert.Equal(t, "Invalid price: string.", got.Message)
	})

	t.Run("jwt errors become authentication", func(t *testing.T) {
		expired := Translate(fmt.Errorf("parse: %w", jwt.ErrTokenExpired))
		invalid := Translate(fmt.Errorf("parse: %w", jwt.ErrTokenSignatureInvalid))

		assert.Equal(t, ErrTokenExpired.Message, expired.Message)
		assert.Equal(t, http.StatusUnauthorized, expired.Status)
		assert.Equal(t, ErrInvalidToken.Message, invalid.Message)
	})

	t.Run("unknown errors become internal", func(t *testing.T) {
		cause := errors.New("nil pointer somewhere")

		got := Translate(cause)

		assert.Equal(t, KindInternal, got.Kind)
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.ErrorIs(t, got, cause)
		assert.False(t, got.Operational())
	})
}
