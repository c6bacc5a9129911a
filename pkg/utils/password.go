package utils

import (
	"os"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword transforma a senha em hash bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compara a senha digitada com o hash guardado
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CheckAdminPassword valida a senha única do painel.
// Preferência: ADMIN_PASSWORD_HASH (bcrypt). Sem hash, cai na comparação
// direta com ADMIN_PASSWORD (padrão admin123, igual ao ambiente de demo).
func CheckAdminPassword(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return CheckPassword(password, hash)
	}

	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		expected = "admin123"
	}
	return password == expected
}
