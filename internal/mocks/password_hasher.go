package mocks

import (
	"errors"

	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// PlainHashPrefix marks hashes produced by MockPasswordHasher.
const PlainHashPrefix = "plain:"

// MockPasswordHasher implements auth.PasswordHasher and auth.PasswordVerifier
// without bcrypt so tests run fast. Hashes are the password with a prefix.
type MockPasswordHasher struct {
	// HashErr makes Hash fail when set.
	HashErr error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return PlainHashPrefix + password, nil
}

// Compare implements auth.PasswordVerifier.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if hashedPassword != PlainHashPrefix+password {
		return errors.New("password mismatch")
	}
	return nil
}
