package entity

// Setting is one key/value pair of runtime configuration.
type Setting struct {
	Key   string
	Value string
}
