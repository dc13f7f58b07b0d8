package password

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor. 10 is a moderate adaptive cost; raising it
// slows every login proportionally.
const Cost = 10

// Hash returns the salted bcrypt digest of plaintext.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored digest. The comparison
// is constant-time inside bcrypt.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
