// Package security holds the credential primitives: one-way password hashing
// and one-time passcode generation.
package security

import "github.com/matthewhartstonge/argon2"

// HashPassword derives an argon2id encoded digest from a plaintext password.
func HashPassword(password string) (string, error) {
	cfg := argon2.DefaultConfig()

	encoded, err := cfg.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// VerifyPassword reports whether password matches the encoded digest.
// Comparison runs in constant time. A malformed digest is a mismatch, not an
// error: the caller must not be able to tell the two apart.
func VerifyPassword(password, encoded string) bool {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encoded))
	if err != nil {
		return false
	}

	return ok
}
