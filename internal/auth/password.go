package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately shared between "no such user" and
// "wrong password" so login failures cannot be used to enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid username or password")

// HashPassword derives a salted one-way hash for storage. The plaintext is
// never persisted or logged.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a login attempt against the stored hash in
// constant time.
func CheckPassword(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}
