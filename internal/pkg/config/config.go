package config

import (
	"io"
	"time"
)

// Config reads typed values by dotted key. Missing or unconvertible keys
// yield the type's zero value; callers supply their own fallbacks.
type Config interface {
	io.Closer

	// GetString returns the value for key as a string.
	GetString(key string) string

	// GetBool returns the value for key as a bool.
	GetBool(key string) bool

	// GetInt returns the value for key as an int.
	GetInt(key string) int

	// GetInt32 returns the value for key as an int32.
	GetInt32(key string) int32

	// GetInt64 returns the value for key as an int64.
	GetInt64(key string) int64

	// GetUint returns the value for key as a uint.
	GetUint(key string) uint

	// GetFloat64 returns the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond reads an integer value and interprets it as seconds.
	GetSecond(key string) time.Duration

	// GetMinute reads an integer value and interprets it as minutes.
	GetMinute(key string) time.Duration

	// GetBinary reads a base64-encoded string value and decodes it.
	GetBinary(key string) []byte

	// GetArray reads a comma-separated string value and splits it.
	GetArray(key string) []string
}
