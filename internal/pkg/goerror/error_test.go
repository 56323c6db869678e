package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInternal, "ERROR_CODE_INTERNAL"},
		{CodeInvalidFormat, "ERROR_CODE_INVALID_FORMAT"},
		{CodeInvalidInput, "ERROR_CODE_INVALID_INPUT"},
		{CodeNotFound, "ERROR_CODE_NOT_FOUND"},
		{CodeConflict, "ERROR_CODE_CONFLICT"},
		{CodeTooManyRequest, "ERROR_CODE_TOO_MANY_REQUESTS"},
		{CodeUnauthorized, "ERROR_CODE_UNAUTHORIZED"},
		{CodeForbidden, "ERROR_CODE_FORBIDDEN"},
		{CodeTimeout, "ERROR_CODE_TIMEOUT"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("Code(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInternal, http.StatusInternalServerError},
		{CodeInvalidFormat, http.StatusBadRequest},
		{CodeInvalidInput, http.StatusUnprocessableEntity},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeTooManyRequest, http.StatusTooManyRequests},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeTimeout, http.StatusRequestTimeout},
	}

	for _, tt := range tests {
		// Arrange
		err := NewBusiness("boom", tt.code)

		// Assert
		gerr, ok := err.(*Error)
		if !ok {
			t.Fatalf("expected *Error, got %T", err)
		}
		if got := gerr.StatusCode(); got != tt.want {
			t.Errorf("StatusCode(%s) = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestServerErrorHidesCause(t *testing.T) {
	// Arrange
	cause := errors.New("pq: connection refused")

	// Act
	err := NewServer(cause)

	// Assert
	gerr := err.(*Error)
	if gerr.Msg() != "Internal server error" {
		t.Fatalf("expected the generic message, got %q", gerr.Msg())
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected the cause to stay unwrappable")
	}
}
