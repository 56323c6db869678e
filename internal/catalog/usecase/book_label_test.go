package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestBookLabel(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	env.repo.settings["app_base_url"] = "https://library.example.com/"
	id := seedBook(t, env, true)

	// Act
	out, err := env.uc.BookLabel(context.Background(), BookLabelInput{ID: id})

	// Assert
	if err != nil {
		t.Fatalf("book label failed: %v", err)
	}
	want := fmt.Sprintf("https://library.example.com/books/%d", id)
	if out.PublicURL != want {
		t.Fatalf("unexpected public url: got %q want %q", out.PublicURL, want)
	}
	if !strings.HasPrefix(out.QRCodeURL, "data:image/png;base64,") {
		t.Fatal("expected a png data uri for the label qr code")
	}
	if out.Title != "Seeded Title" || out.Author != "Seeded Author" {
		t.Fatalf("unexpected label fields: %+v", out)
	}
}

func TestBookLabelBaseURLFallback(t *testing.T) {
	// Arrange: no app_base_url setting stored.
	env := newTestEnv(t, time.Now())
	id := seedBook(t, env, true)

	// Act
	out, err := env.uc.BookLabel(context.Background(), BookLabelInput{ID: id})

	// Assert
	if err != nil {
		t.Fatalf("book label failed: %v", err)
	}
	want := fmt.Sprintf("http://fallback.example.com/books/%d", id)
	if out.PublicURL != want {
		t.Fatalf("unexpected public url: got %q want %q", out.PublicURL, want)
	}
}

func TestBookLabelNotFound(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())

	// Act
	_, err := env.uc.BookLabel(context.Background(), BookLabelInput{ID: 999})

	// Assert
	if err == nil {
		t.Fatal("expected missing book to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusNotFound {
		t.Fatalf("expected not found, got status %d", status)
	}
}
