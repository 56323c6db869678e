package mfa

// Encryptor seals and opens secrets bound to a Scope.
type Encryptor interface {
	Encrypt(plaintext []byte, scope Scope) (ciphertext []byte, err error)
	Decrypt(ciphertext []byte, scope Scope) (plaintext []byte, err error)
}

// KeyProvider supplies the raw AES key for a scope. AES-256-GCM requires
// 32-byte keys. Implementations may key per tenant or per environment.
type KeyProvider interface {
	Key(scope Scope) ([]byte, error)
}
