package mfa

import (
	"bytes"
	"errors"
	"testing"
)

func testEncryptor() *AESGCMEncryptor {
	key := bytes.Repeat([]byte{0xAB}, 32)

	return NewAESGCMEncryptor(StaticKeyProvider{KeyBytes: key})
}

func TestAESGCMRoundTrip(t *testing.T) {
	// Arrange
	e := testEncryptor()
	scope := Scope{UserID: 42, Purpose: PurposeOTPSeed}
	plaintext := []byte("JBSWY3DPEHPK3PXP")

	// Act
	ciphertext, err := e.Encrypt(plaintext, scope)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	decrypted, err := e.Decrypt(ciphertext, scope)

	// Assert
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("round trip mismatch: got %q want %q", decrypted, plaintext)
	}
}

func TestAESGCMDecryptWrongScope(t *testing.T) {
	// Arrange
	e := testEncryptor()
	plaintext := []byte("JBSWY3DPEHPK3PXP")

	ciphertext, err := e.Encrypt(plaintext, Scope{UserID: 42, Purpose: PurposeOTPSeed})
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	// Act
	_, err = e.Decrypt(ciphertext, Scope{UserID: 43, Purpose: PurposeOTPSeed})

	// Assert
	if !errors.Is(err, ErrDecryptFailed) {
		t.Fatalf("expected decrypt failure for a different user, got %v", err)
	}
}

func TestAESGCMDecryptTampered(t *testing.T) {
	// Arrange
	e := testEncryptor()
	scope := Scope{UserID: 42, Purpose: PurposeOTPSeed}

	ciphertext, err := e.Encrypt([]byte("JBSWY3DPEHPK3PXP"), scope)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	ciphertext[len(ciphertext)-1] ^= 0xFF

	// Act
	_, err = e.Decrypt(ciphertext, scope)

	// Assert
	if !errors.Is(err, ErrDecryptFailed) {
		t.Fatalf("expected decrypt failure for tampered ciphertext, got %v", err)
	}
}

func TestAESGCMEncryptEmptyPlaintext(t *testing.T) {
	e := testEncryptor()

	_, err := e.Encrypt(nil, Scope{UserID: 1, Purpose: PurposeOTPSeed})
	if !errors.Is(err, ErrPlaintextEmpty) {
		t.Fatalf("expected ErrPlaintextEmpty, got %v", err)
	}
}
