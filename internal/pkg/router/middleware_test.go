package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func appendingMiddleware(order *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*order = append(*order, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestChainOrder(t *testing.T) {
	// Arrange
	var order []string
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	})

	// Act
	Chain(h,
		appendingMiddleware(&order, "first"),
		appendingMiddleware(&order, "second"),
	).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert: first listed runs outermost.
	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestChainNoMiddleware(t *testing.T) {
	// Arrange
	called := false
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	// Act
	Chain(h).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	if !called {
		t.Fatal("expected the handler to run")
	}
}
