package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
)

func TestQRPNG(t *testing.T) {
	// Arrange
	q := NewQR()

	// Act
	data, err := q.PNG("https://example.com/books/42", 128)

	// Assert
	if err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 128 || bounds.Dy() != 128 {
		t.Fatalf("unexpected image size: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestQRPNGDefaultSize(t *testing.T) {
	q := NewQR()

	data, err := q.PNG("payload", 0)
	if err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a valid png: %v", err)
	}
	if img.Bounds().Dx() != 256 {
		t.Fatalf("expected fallback size 256, got %d", img.Bounds().Dx())
	}
}

func TestQRDataURI(t *testing.T) {
	// Arrange
	q := NewQR()

	// Act
	uri, err := q.DataURI("otpauth://totp/Biblio:staff@example.com", 64)

	// Assert
	if err != nil {
		t.Fatalf("data uri encode failed: %v", err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected data uri prefix: %q", uri[:min(len(uri), 30)])
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("payload is not a valid png: %v", err)
	}
}
