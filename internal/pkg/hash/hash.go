package hash

// Hash defines one-way hashing and verification of secrets.
type Hash interface {
	// Hash hashes plaintext and returns the encoded hash.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hashed, plaintext string) bool
}
