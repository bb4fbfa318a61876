package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Fixed bcrypt work factor. Changing this does not invalidate existing
// hashes; bcrypt encodes the cost in the hash itself.
const bcryptCost = 10

// HashPassword generates a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks the password against a stored hash. A mismatch
// returns (false, nil); only malformed hashes produce an error.
func VerifyPassword(password, encodedHash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
