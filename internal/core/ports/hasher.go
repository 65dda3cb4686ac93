package ports

// PasswordHasher is the only component that touches credential material.
// Implementations must never log plaintext or digests.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify performs the comparison with constant-time semantics delegated
	// to the underlying primitive.
	Verify(plaintext, digest string) bool
}
