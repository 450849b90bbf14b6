// Package password wraps bcrypt hashing for user credentials.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedDigest is returned when a stored digest is not a valid
// bcrypt hash and can therefore never verify.
var ErrMalformedDigest = errors.New("malformed password digest")

// Hash derives a salted bcrypt digest from a plaintext password.
// Each call uses a fresh random salt, so hashing the same plaintext
// twice yields different digests.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the given bcrypt digest.
// A mismatch is not an error; ErrMalformedDigest is returned when the
// digest is not a valid bcrypt output.
func Verify(plaintext, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
}
