package usecase

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func seedBook(t *testing.T, env *testEnv, active bool) int64 {
	t.Helper()

	out, err := env.uc.BookCreate(context.Background(), BookCreateInput{
		Title:  "Seeded Title",
		Author: "Seeded Author",
		Active: active,
	})
	if err != nil {
		t.Fatalf("seed book failed: %v", err)
	}

	return out.ID
}

func TestBookCoverUpload(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	id := seedBook(t, env, true)

	// Act
	out, err := env.uc.BookCoverUpload(context.Background(), BookCoverUploadInput{
		ID:       id,
		Filename: "cover.PNG",
		File:     io.NopCloser(strings.NewReader("png-bytes")),
	})

	// Assert
	if err != nil {
		t.Fatalf("cover upload failed: %v", err)
	}
	if !strings.HasSuffix(out.CoverPath, ".png") {
		t.Fatalf("expected a lowercase png key, got %q", out.CoverPath)
	}
	if env.repo.books[id].CoverPath != out.CoverPath {
		t.Fatalf("expected cover path to be stored, got %q", env.repo.books[id].CoverPath)
	}
	if _, ok := env.blob.uploaded["covers-bucket/"+out.CoverPath]; !ok {
		t.Fatalf("expected object to be uploaded, have %v", env.blob.uploaded)
	}
}

func TestBookCoverUploadReplacesStaleObject(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	id := seedBook(t, env, true)

	if _, err := env.uc.BookCoverUpload(context.Background(), BookCoverUploadInput{
		ID:       id,
		Filename: "cover.jpg",
		File:     io.NopCloser(strings.NewReader("jpg-bytes")),
	}); err != nil {
		t.Fatalf("first cover upload failed: %v", err)
	}

	// Act: a new extension leaves the old object orphaned.
	if _, err := env.uc.BookCoverUpload(context.Background(), BookCoverUploadInput{
		ID:       id,
		Filename: "cover.webp",
		File:     io.NopCloser(strings.NewReader("webp-bytes")),
	}); err != nil {
		t.Fatalf("second cover upload failed: %v", err)
	}
	if err := env.gomgr.Wait(); err != nil {
		t.Fatalf("background cleanup failed: %v", err)
	}

	// Assert
	if len(env.blob.deleted) != 1 || !strings.HasSuffix(env.blob.deleted[0], ".jpg") {
		t.Fatalf("expected the jpg object to be deleted, got %v", env.blob.deleted)
	}
}

func TestBookCoverUploadBadExtension(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	id := seedBook(t, env, true)

	// Act
	_, err := env.uc.BookCoverUpload(context.Background(), BookCoverUploadInput{
		ID:       id,
		Filename: "cover.gif",
		File:     io.NopCloser(strings.NewReader("gif-bytes")),
	})

	// Assert
	if err == nil {
		t.Fatal("expected unsupported extension to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected unprocessable entity, got status %d", status)
	}
}

func TestBookDeleteRemovesCoverObject(t *testing.T) {
	// Arrange
	env := newTestEnv(t, time.Now())
	id := seedBook(t, env, true)

	if _, err := env.uc.BookCoverUpload(context.Background(), BookCoverUploadInput{
		ID:       id,
		Filename: "cover.jpg",
		File:     io.NopCloser(strings.NewReader("jpg-bytes")),
	}); err != nil {
		t.Fatalf("cover upload failed: %v", err)
	}

	// Act
	if err := env.uc.BookDelete(context.Background(), BookDeleteInput{ID: id}); err != nil {
		t.Fatalf("book delete failed: %v", err)
	}
	if err := env.gomgr.Wait(); err != nil {
		t.Fatalf("background cleanup failed: %v", err)
	}

	// Assert
	if _, ok := env.repo.books[id]; ok {
		t.Fatal("expected the book row to be removed")
	}
	if len(env.blob.deleted) != 1 {
		t.Fatalf("expected the cover object to be deleted, got %v", env.blob.deleted)
	}
}
