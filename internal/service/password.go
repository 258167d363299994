package service

import "golang.org/x/crypto/bcrypt"

// Passwords are stored as bcrypt hashes. The original demo compared
// plaintext; that is the one behavior deliberately not reproduced.

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
