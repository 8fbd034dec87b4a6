package utils

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"
)

const initialPasswordAlphabet = "0123456789abcdef"

// GenerateInitialPassword 產生新員工的隨機初始密碼（16 位十六進位字串）。
func GenerateInitialPassword() (string, error) {
	pw, err := gonanoid.Generate(initialPasswordAlphabet, 16)
	if err != nil {
		return "", fmt.Errorf("failed to generate initial password: %w", err)
	}
	return pw, nil
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
