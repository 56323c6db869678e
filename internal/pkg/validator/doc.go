// Package validator wraps struct validation behind a small interface so
// usecases stay decoupled from the concrete validation library.
package validator
