package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestBookReportInvalidRange(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	// Act
	_, err := env.uc.BookReport(context.Background(), BookReportInput{
		AcquiredFrom: from,
		AcquiredTo:   from.AddDate(0, -1, 0),
	})

	// Assert
	if err == nil {
		t.Fatal("expected an inverted date range to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected unprocessable entity, got status %d", status)
	}
}

func TestBookReportActiveFilter(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	seedBook(t, env, true)
	seedBook(t, env, false)
	active := true

	// Act
	out, err := env.uc.BookReport(context.Background(), BookReportInput{Active: &active})

	// Assert
	if err != nil {
		t.Fatalf("book report failed: %v", err)
	}
	if len(out.Books) != 1 {
		t.Fatalf("expected one active book, got %d", len(out.Books))
	}
	if !out.Books[0].Active {
		t.Fatal("expected only active books in the report")
	}
}

func TestBookReportUnfiltered(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	seedBook(t, env, true)
	seedBook(t, env, false)

	// Act
	out, err := env.uc.BookReport(context.Background(), BookReportInput{})

	// Assert
	if err != nil {
		t.Fatalf("book report failed: %v", err)
	}
	if len(out.Books) != 2 {
		t.Fatalf("expected both books without a status filter, got %d", len(out.Books))
	}
}
