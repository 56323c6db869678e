package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestBookCreateDefaults(t *testing.T) {
	// Arrange
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	env := newTestEnv(t, now)

	// Act
	out, err := env.uc.BookCreate(context.Background(), BookCreateInput{
		Title:  "The Go Programming Language",
		Author: "Donovan and Kernighan",
		Active: true,
	})

	// Assert
	if err != nil {
		t.Fatalf("book create failed: %v", err)
	}
	book := env.repo.books[out.ID]
	if book == nil {
		t.Fatal("expected the book to be stored")
	}
	if book.Quantity != 1 {
		t.Fatalf("expected quantity to default to 1, got %d", book.Quantity)
	}
	if !book.AcquisitionDate.Equal(now) {
		t.Fatalf("expected acquisition date to default to now, got %v", book.AcquisitionDate)
	}
}

func TestBookCreateIdempotencyKeyReplay(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	in := BookCreateInput{
		Title:          "Clean Architecture",
		Author:         "Robert C. Martin",
		Active:         true,
		IdempotencyKey: "req-123",
	}

	if _, err := env.uc.BookCreate(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Act
	_, err := env.uc.BookCreate(context.Background(), in)

	// Assert
	if err == nil {
		t.Fatal("expected replayed request to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusConflict {
		t.Fatalf("expected conflict, got status %d", status)
	}
	if len(env.repo.books) != 1 {
		t.Fatalf("expected a single stored book, got %d", len(env.repo.books))
	}
}

func TestBookCreateIdempotencyKeyRetryAfterFailure(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	env.repo.createBookErr = errors.New("connection reset")
	in := BookCreateInput{
		Title:          "Designing Data-Intensive Applications",
		Author:         "Martin Kleppmann",
		Active:         true,
		IdempotencyKey: "req-456",
	}

	if _, err := env.uc.BookCreate(context.Background(), in); err == nil {
		t.Fatal("expected first create to fail")
	}
	env.repo.createBookErr = nil

	// Act
	_, err := env.uc.BookCreate(context.Background(), in)

	// Assert: a key that already failed is refused, not retried.
	if err == nil {
		t.Fatal("expected retried request to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusConflict {
		t.Fatalf("expected conflict, got status %d", status)
	}
	if len(env.repo.books) != 0 {
		t.Fatalf("expected no stored books, got %d", len(env.repo.books))
	}
}

func TestBookCreateMissingTitle(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())

	// Act
	_, err := env.uc.BookCreate(context.Background(), BookCreateInput{
		Author: "Anonymous",
	})

	// Assert
	if err == nil {
		t.Fatal("expected missing title to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected unprocessable entity, got status %d", status)
	}
}
