package security

import "golang.org/x/crypto/bcrypt"

// cost 12 keeps verification in the tens of milliseconds, slow enough to
// resist offline brute force without hurting interactive login
const bcryptCost = 12

// HashPassword hashes a plain text password with bcrypt.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)

	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// CheckPassword compares a bcrypt hash with a plaintext password. A malformed
// hash reports a mismatch rather than panicking.
func CheckPassword(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
