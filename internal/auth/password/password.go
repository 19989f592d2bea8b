// Package password wraps bcrypt for credential verification. bcrypt embeds
// a per-hash salt and compares in constant time, so raw strings are never
// compared for equality here.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns the bcrypt hash of a plaintext password.
func Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// Verify reports whether plain matches the stored bcrypt hash. Any failure,
// including a malformed hash, is treated as "does not match".
func Verify(plain, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plain)) == nil
}
