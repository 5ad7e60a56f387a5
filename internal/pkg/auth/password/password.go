/*
Package password provides one-way password hashing for the credential store.

Hashes are salted bcrypt digests; verification is constant-time and uses the
salt embedded in the stored hash. Plaintext passwords are never persisted.
*/
package password

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from the plaintext password.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
