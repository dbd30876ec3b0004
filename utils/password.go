package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword düz metin parolayı bcrypt ile özetler.
func HashPassword(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword özet ile düz metni karşılaştırır.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
