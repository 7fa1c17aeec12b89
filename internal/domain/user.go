package domain

import (
	"net/mail"
	"strings"
	"time"
)

// User is a registered account. The password hash never leaves the process.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User with a fresh ID from an already hashed password.
// The email is trimmed and lower-cased so uniqueness is case-insensitive.
func NewUser(name, email, hashedPassword string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             NewID(),
		Name:           strings.TrimSpace(name),
		Email:          NormalizeEmail(email),
		HashedPassword: hashedPassword,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if !IsValidID(u.ID) {
		return NewValidationError("id", "must be a 24 character hex string", ErrInvalidID)
	}
	if u.Name == "" {
		return NewValidationError("name", "cannot be empty", nil)
	}
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", nil)
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationError("email", "is not a valid address", ErrInvalidEmail)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "hash cannot be empty", nil)
	}
	return nil
}

// NormalizeEmail returns the canonical form under which emails are stored and looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserSummary is the subset of a user embedded in task reads.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}
