// file: internal/auth/password.go
// version: 1.0.0
// guid: 6b8d0f2a-4c5e-4a7b-9e1d-3f5a7c9e1b46

// Package auth handles credentials and session tokens.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashAlgo is recorded on every user row.
const PasswordHashAlgo = "bcrypt"

// HashPassword hashes a plain password with bcrypt at the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A malformed hash is
// an error; a mismatch is not.
func VerifyPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
