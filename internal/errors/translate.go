package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	dupKeyQuoted = regexp.MustCompile(`dup key: \{[^}]*?"((?:[^"\\]|\\.)*)"`)
	dupKeyRaw    = regexp.MustCompile(`dup key: \{ ?([^}]*?) ?\}`)
)

// Translate classifies any error into an AppError. Errors that are already
// AppErrors pass through; driver and library errors are mapped to their
// kind; everything else becomes an internal error.
func Translate(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		e := Validation(ValidationMessages(validationErrs)...)
		e.Err = err
		return e
	}

	if mongo.IsDuplicateKeyError(err) {
		return Duplicate(duplicateValue(err), err)
	}

	if errors.Is(err, primitive.ErrInvalidHex) {
		e := Cast("_id", "malformed object id")
		e.Err = err
		return e
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		e := Cast(typeErr.Field, typeErr.Value)
		e.Err = err
		return e
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Operational(http.StatusBadRequest, "Malformed JSON body.", err)
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return Operational(http.StatusRequestEntityTooLarge, "Request body too large", err)
	}

	if errors.Is(err, jwt.ErrTokenExpired) {
		return Unauthenticated(ErrTokenExpired.Message, err)
	}
	if isJWTError(err) {
		return Unauthenticated(ErrInvalidToken.Message, err)
	}

	return Internal(err)
}

func isJWTError(err error) bool {
	for _, target := range []error{
		jwt.ErrTokenMalformed,
		jwt.ErrTokenSignatureInvalid,
		jwt.ErrSignatureInvalid,
		jwt.ErrTokenUnverifiable,
		jwt.ErrTokenNotValidYet,
		jwt.ErrTokenInvalidClaims,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func duplicateValue(err error) string {
	msg := err.Error()
	if m := dupKeyQuoted.FindStringSubmatch(msg); m != nil {
		return fmt.Sprintf("%q", m[1])
	}
	if m := dupKeyRaw.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return "value"
}

// ValidationMessages renders one human readable message per failed field.
func ValidationMessages(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte", "gt", "lte", "lt":
		return fmt.Sprintf("%s must be %s %s", field, comparisonWords[fe.Tag()], fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return "Passwords are not the same!"
	case "objectid":
		return fmt.Sprintf("%s must be a valid id", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

var comparisonWords = map[string]string{
	"gte": "at least",
	"gt":  "greater than",
	"lte": "at most",
	"lt":  "less than",
}
