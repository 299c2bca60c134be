package hash

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt output always starts with "$2" ($2a$/$2b$/$2y$). Stored values
// without this prefix are treated as plaintext leftovers by the cleanup tool.
const bcryptPrefix = "$2"

// Password hashes a plaintext password with bcrypt.
func Password(plaintext string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	return string(bytes), err
}

// Verify reports whether plaintext matches the stored bcrypt hash.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// IsHashed reports whether a stored value already carries the bcrypt prefix.
func IsHashed(stored string) bool {
	return strings.HasPrefix(stored, bcryptPrefix)
}
