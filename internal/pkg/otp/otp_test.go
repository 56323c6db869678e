package otp

import (
	"strings"
	"testing"
	"time"

	libOTP "github.com/pquerna/otp"
)

func TestTOTPGenerate(t *testing.T) {
	// Arrange
	o := NewTOTP("Biblio", 30, 1, libOTP.DigitsSix)

	// Act
	secret, uri, err := o.Generate("staff@example.com")

	// Assert
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if secret == "" {
		t.Fatal("expected a non-empty secret")
	}
	if !strings.HasPrefix(uri, "otpauth://totp/") {
		t.Fatalf("unexpected provisioning uri: %q", uri)
	}
	if !strings.Contains(uri, "Biblio") {
		t.Fatalf("expected issuer in provisioning uri: %q", uri)
	}
}

func TestTOTPValidate(t *testing.T) {
	// Arrange
	o := NewTOTP("Biblio", 30, 1, libOTP.DigitsSix)
	secret, _, err := o.Generate("staff@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	code, err := o.GenerateCode(secret, now)
	if err != nil {
		t.Fatalf("generate code failed: %v", err)
	}

	// Act & Assert
	if !o.Validate(code, secret, now) {
		t.Fatal("expected current code to validate")
	}
	if !o.Validate(code, secret, now.Add(30*time.Second)) {
		t.Fatal("expected code within skew to validate")
	}
	if o.Validate(code, secret, now.Add(5*time.Minute)) {
		t.Fatal("expected stale code to be rejected")
	}
	if o.Validate("000000", secret, now) && code != "000000" {
		t.Fatal("expected wrong code to be rejected")
	}
}
