// Package qrcode renders QR codes as PNG images and base64 data URIs.
package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// Encoder renders payloads as QR code images.
type Encoder interface {
	// PNG encodes the payload as a square QR code PNG of the given pixel size.
	PNG(payload string, size int) ([]byte, error)
	// DataURI encodes the payload as a base64 PNG data URI.
	DataURI(payload string, size int) (string, error)
}

// QR implements Encoder using QR codes with medium error correction.
type QR struct{}

// NewQR returns a QR encoder.
func NewQR() *QR {
	return &QR{}
}

// PNG encodes the payload as a square QR code PNG of the given pixel size.
// A non-positive size falls back to 256.
func (q *QR) PNG(payload string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}

	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}

	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, code); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// DataURI encodes the payload as a base64 PNG data URI that can be embedded
// directly in an img tag.
func (q *QR) DataURI(payload string, size int) (string, error) {
	img, err := q.PNG(payload, size)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(img), nil
}
