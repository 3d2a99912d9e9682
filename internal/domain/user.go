package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered author of the blogging platform.
// The plaintext Password is only populated transiently during registration
// and is never serialized; HashedPassword is what gets persisted.
type User struct {
	ID             uuid.UUID `json:"-"`
	FullName       string    `json:"fullName"`
	DisplayName    string    `json:"displayName"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	HashedPassword string    `json:"-"`
	Bio            *string   `json:"bio"`
	Avatar         string    `json:"avatar"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User from registration input. The display name defaults
// to the full name and the avatar to a generated placeholder URL.
// The caller is responsible for hashing the password before storage.
func NewUser(fullName, email, password string) (*User, error) {
	fullName = strings.TrimSpace(fullName)

	switch {
	case fullName == "":
		return nil, ErrEmptyFullName
	case email == "":
		return nil, ErrEmptyEmail
	case password == "":
		return nil, ErrEmptyPassword
	}

	now := time.Now().UTC()
	user := &User{
		ID:          uuid.New(),
		FullName:    fullName,
		DisplayName: fullName,
		Email:       strings.ToLower(email),
		Password:    password,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	user.Avatar = DefaultAvatarURL(user.DisplayName)

	return user, nil
}

// DefaultAvatarURL builds the placeholder avatar for a display name.
func DefaultAvatarURL(displayName string) string {
	return fmt.Sprintf("https://api.adorable.io/avatars/64/%s", url.PathEscape(displayName))
}
