package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost stays at bcrypt's default (10), enough work factor against
// offline brute force for this product.
const HashCost = bcrypt.DefaultCost

// HashPassword produces a salted bcrypt hash.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	return string(bytes), err
}

// CheckPasswordHash verifies a password against its stored hash using
// bcrypt's own comparison, never a manual string compare.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters long")
	}
	return nil
}
