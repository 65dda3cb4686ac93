// Package crypto holds the credential store adapter: the single place where
// password hashing and verification happen.
package crypto

import "golang.org/x/crypto/bcrypt"

// hashCost is the bcrypt work factor for stored credentials. Changing it
// only affects new hashes; existing digests embed their own cost.
const hashCost = 10

// BcryptHasher implements ports.PasswordHasher on top of bcrypt, which
// salts per call and embeds its parameters in the digest.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
