package auth

import "golang.org/x/crypto/bcrypt"

// hashCost matches bcrypt.DefaultCost (10); the work factor is part of the
// stored hash, so changing it only affects newly created accounts.
const hashCost = bcrypt.DefaultCost

// HashPassword derives a salted one-way hash from a plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash. A
// malformed hash is treated as a mismatch, never an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
