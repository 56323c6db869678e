package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

func TestPublisherCreateAndList(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())

	// Act
	out, err := env.uc.PublisherCreate(context.Background(), PublisherCreateInput{Name: "  O'Reilly  "})
	if err != nil {
		t.Fatalf("publisher create failed: %v", err)
	}
	list, err := env.uc.PublisherList(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("publisher list failed: %v", err)
	}
	if len(list.Publishers) != 1 {
		t.Fatalf("expected one publisher, got %d", len(list.Publishers))
	}
	if list.Publishers[0].ID != out.ID || list.Publishers[0].Name != "O'Reilly" {
		t.Fatalf("unexpected publisher: %+v", list.Publishers[0])
	}
}

func TestPublisherCreateDuplicate(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())

	if _, err := env.uc.PublisherCreate(context.Background(), PublisherCreateInput{Name: "Manning"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Act
	_, err := env.uc.PublisherCreate(context.Background(), PublisherCreateInput{Name: "Manning"})

	// Assert
	if err == nil {
		t.Fatal("expected duplicate publisher to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusConflict {
		t.Fatalf("expected conflict, got status %d", status)
	}
}

func TestPublisherDeleteInUse(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	out, err := env.uc.PublisherCreate(context.Background(), PublisherCreateInput{Name: "Manning"})
	if err != nil {
		t.Fatalf("publisher create failed: %v", err)
	}
	env.repo.deletePublisherErr = goerror.ErrConflict

	// Act
	err = env.uc.PublisherDelete(context.Background(), PublisherDeleteInput{ID: out.ID})

	// Assert
	if err == nil {
		t.Fatal("expected deletion of a referenced publisher to fail")
	}
	if status := statusOf(t, err); status != http.StatusConflict {
		t.Fatalf("expected conflict, got status %d", status)
	}
}

func TestCategoryDeleteNotFound(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())

	// Act
	err := env.uc.CategoryDelete(context.Background(), CategoryDeleteInput{ID: 123})

	// Assert
	if err == nil {
		t.Fatal("expected deletion of a missing category to fail")
	}
	if status := statusOf(t, err); status != http.StatusNotFound {
		t.Fatalf("expected not found, got status %d", status)
	}
}
