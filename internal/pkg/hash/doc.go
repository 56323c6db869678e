// Package hash holds the password hashing abstraction. Only the hash is
// ever stored; verification compares user input against it.
package hash
