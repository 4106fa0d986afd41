package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrValidation = errors.New("invalid input")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrProfileNotFound = errors.New("profile not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor in the system. The password hash is
// write-only from the API's perspective and never serialized.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Profile is the one-to-one public extension of a User. It is created
// together with the user; username defaults to the signup email.
type Profile struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Username    string    `json:"username" gorm:"not null"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Website     string    `json:"website,omitempty"`
	GithubURL   string    `json:"github_url,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// untouched; identity and timestamp columns are never writable.
type ProfileUpdate struct {
	Username    *string
	DisplayName *string
	AvatarURL   *string
	Website     *string
	GithubURL   *string
	Bio         *string
}
