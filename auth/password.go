package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt work factor for new password hashes
const hashCost = 12

var ErrWrongPassword = errors.New("auth: wrong password")

// HashPassword hashes a plaintext password with bcrypt. The resulting
// string embeds the salt and cost, so it is stored as-is.
func HashPassword(plaintext string) (string, error) {
	if len(plaintext) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead
		return "", errors.New("auth: password must be 72 bytes or fewer")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a stored hash against a candidate plaintext.
// Returns ErrWrongPassword when they do not match.
func CheckPassword(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrWrongPassword
	}
	return err
}
