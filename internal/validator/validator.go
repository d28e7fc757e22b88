package validator

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var registerOnce sync.Once

// IsSlug reports whether s is a well-formed tour slug.
func IsSlug(s string) bool {
	return slugRegex.MatchString(s)
}

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return IsSlug(fl.Field().String())
}

// validateObjectID accepts 24 character hex document ids
func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}

// jsonTagName reports fields by their JSON name so messages match the payload
func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// RegisterCustomValidators registers all custom validators with gin's validator.
// Safe to call more than once.
func RegisterCustomValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonTagName)
			_ = v.RegisterValidation("slug", validateSlug)
			_ = v.RegisterValidation("objectid", validateObjectID)
		}
	})
}
