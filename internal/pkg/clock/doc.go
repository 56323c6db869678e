// Package clock abstracts the current time behind a one-method interface
// so business logic can be tested against a deterministic clock.
package clock
