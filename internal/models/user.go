// Package models defines data structures for the application.
package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser      = "user"
	RoleGuide     = "guide"
	RoleLeadGuide = "lead-guide"
	RoleAdmin     = "admin"
)

// DefaultPhoto is the photo assigned to new accounts.
const DefaultPhoto = "default.jpg"

// User represents an account in the system.
type User struct {
	ID                   primitive.ObjectID `json:"_id" bson:"_id,omitempty" example:"5c8a1d5b0190b214360dc057" swaggertype:"string"`
	Name                 string             `json:"name" bson:"name" example:"Jonas Schmedtmann"`
	Email                string             `json:"email" bson:"email" example:"admin@natours.io"`
	Photo                string             `json:"photo" bson:"photo" example:"user-1.jpg"`
	Role                 string             `json:"role" bson:"role" example:"user"`
	Password             string             `json:"-" bson:"password"`
	PasswordChangedAt    *time.Time         `json:"passwordChangedAt,omitempty" bson:"passwordChangedAt,omitempty"`
	PasswordResetToken   string             `json:"-" bson:"passwordResetToken,omitempty"`
	PasswordResetExpires *time.Time         `json:"-" bson:"passwordResetExpires,omitempty"`
	Active               *bool              `json:"-" bson:"active,omitempty"`
	Version              int                `json:"-" bson:"__v"`
}

// FirstName is the first word of the display name, used in emails.
func (u *User) FirstName() string {
	if fields := strings.Fields(u.Name); len(fields) > 0 {
		return fields[0]
	}
	return u.Name
}

// ChangedPasswordAfter reports whether the password changed after a token
// issued at iat. Comparison happens at second resolution, like JWT iat.
func (u *User) ChangedPasswordAfter(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return iat.Unix() < u.PasswordChangedAt.Unix()
}

// IsActive is false only for deactivated accounts.
func (u *User) IsActive() bool {
	return u.Active == nil || *u.Active
}

// Summary is the public projection embedded in related documents.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Photo: u.Photo, Role: u.Role}
}

// UserSummary is a populated user reference.
type UserSummary struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id" example:"5c8a1d5b0190b214360dc057" swaggertype:"string"`
	Name  string             `json:"name" bson:"name" example:"Leo Gillespie"`
	Email string             `json:"email,omitempty" bson:"email,omitempty" example:"leo@example.com"`
	Photo string             `json:"photo" bson:"photo" example:"user-2.jpg"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty" example:"guide"`
}

// SignupRequest is the payload for creating an account.
type SignupRequest struct {
	Name            string `json:"name" form:"name" binding:"required" example:"Laura Wilson"`
	Email           string `json:"email" form:"email" binding:"required,email" example:"laura@example.com"`
	Password        string `json:"password" form:"password" binding:"required,min=8" example:"pass1234"`
	PasswordConfirm string `json:"passwordConfirm" form:"passwordConfirm" binding:"required,eqfield=Password" example:"pass1234"`
}

// ToModel builds the new user. The password is hashed by the caller.
func (r *SignupRequest) ToModel() *User {
	return &User{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Photo:    DefaultPhoto,
		Role:     RoleUser,
		Password: r.Password,
	}
}

// LoginRequest is the payload for user login. Missing fields are reported
// with a single message, so nothing is bound as required here.
type LoginRequest struct {
	Email    string `json:"email" form:"email" example:"laura@example.com"`
	Password string `json:"password" form:"password" example:"pass1234"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"laura@example.com"`
}

// ResetPasswordRequest completes a password reset.
type ResetPasswordRequest struct {
	Password        string `json:"password" binding:"required,min=8" example:"newpass123"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password" example:"newpass123"`
}

// UpdatePasswordRequest changes the password of the signed-in user.
type UpdatePasswordRequest struct {
	PasswordCurrent string `json:"passwordCurrent" form:"passwordCurrent" binding:"required" example:"pass1234"`
	Password        string `json:"password" form:"password" binding:"required,min=8" example:"newpass123"`
	PasswordConfirm string `json:"passwordConfirm" form:"passwordConfirm" binding:"required,eqfield=Password" example:"newpass123"`
}

// UpdateMeRequest is the self-service profile update. Password fields are
// bound only so they can be rejected.
type UpdateMeRequest struct {
	Name            *string `json:"name" form:"name" binding:"omitempty,min=1" example:"Laura Wilson"`
	Email           *string `json:"email" form:"email" binding:"omitempty,email" example:"laura@example.com"`
	Password        *string `json:"password" form:"password" swaggerignore:"true"`
	PasswordConfirm *string `json:"passwordConfirm" form:"passwordConfirm" swaggerignore:"true"`
	Photo           string  `json:"-" form:"-"`
}

// TouchesPassword reports whether the payload tries to change the password.
func (r *UpdateMeRequest) TouchesPassword() bool {
	return r.Password != nil || r.PasswordConfirm != nil
}

// Fields returns the whitelisted profile changes.
func (r *UpdateMeRequest) Fields() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Photo != "" {
		set["photo"] = r.Photo
	}
	return set
}

// UpdateUserRequest is the administrative update. Passwords cannot be
// changed through it.
type UpdateUserRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1" example:"Laura Wilson"`
	Email  *string `json:"email" binding:"omitempty,email" example:"laura@example.com"`
	Photo  *string `json:"photo" example:"user-7.jpg"`
	Role   *string `json:"role" binding:"omitempty,oneof=user guide lead-guide admin" example:"guide"`
	Active *bool   `json:"active" example:"true"`
}

// Fields returns the document changes.
func (r *UpdateUserRequest) Fields() bson.M {
	set := bson.M{}
	if r.Name != nil {
		set["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Photo != nil {
		set["photo"] = *r.Photo
	}
	if r.Role != nil {
		set["role"] = *r.Role
	}
	if r.Active != nil {
		set["active"] = *r.Active
	}
	return set
}
