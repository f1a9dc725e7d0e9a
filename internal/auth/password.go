package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Encrypter hashes and verifies user passwords. Callers never inspect
// the hash format.
type Encrypter interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// BcryptEncrypter implements Encrypter with bcrypt.
type BcryptEncrypter struct {
	// Cost overrides bcrypt.DefaultCost when positive. Tests lower it
	// to keep hashing fast.
	Cost int
}

func (e BcryptEncrypter) Hash(plaintext string) (string, error) {
	cost := e.Cost
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

func (e BcryptEncrypter) Compare(hash, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
}
