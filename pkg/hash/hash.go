package hash

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password хеширует пароль через bcrypt
func Password(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare сверяет пароль с хешем
func Compare(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
