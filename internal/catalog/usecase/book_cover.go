package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/storage"
)

var coverContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type BookCoverUploadInput struct {
	ID       int64 `validate:"required,gt=0"`
	Filename string
	File     io.ReadCloser
}

type BookCoverUploadOutput struct {
	CoverPath string
}

func (s *Usecase) BookCoverUpload(ctx context.Context, in BookCoverUploadInput) (*BookCoverUploadOutput, error) {
	ctx, span := s.startSpan(ctx, "BookCoverUpload")
	defer func() {
		if in.File != nil {
			_ = in.File.Close()
		}
		span.End()
	}()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.File == nil {
		return nil, goerror.NewInvalidFormat("cover file is required")
	}

	ext := strings.ToLower(path.Ext(in.Filename))
	contentType, ok := coverContentTypes[ext]
	if !ok {
		return nil, goerror.NewInvalidInput(nil, "cover", "must be a jpg, png or webp image")
	}

	book, err := s.repoDB.GetBookByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("book not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get book by id", "book_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Capture before UpdateBookCover; the row may be shared with the repo.
	oldKey := book.CoverPath

	bucket := s.cfg.GetString("storage.bucket")
	key := fmt.Sprintf("covers/%d%s", in.ID, ext)

	if _, err := s.blob.Upload(ctx, bucket, key, in.File, storage.UploadOptions{
		Size:        -1, // streamed, length unknown
		ContentType: contentType,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to upload book cover", "book_id", in.ID, "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateBookCover(ctx, in.ID, key); err != nil {
		slog.ErrorContext(ctx, "failed to repo update book cover", "book_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// A previous cover with a different extension leaves a stale object behind.
	if oldKey != "" && oldKey != key {
		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			if err := s.blob.Delete(ctx, bucket, oldKey); err != nil {
				slog.ErrorContext(ctx, "failed to delete previous cover object", "book_id", in.ID, "key", oldKey, "error", err)
				return err
			}
			return nil
		})
	}

	return &BookCoverUploadOutput{CoverPath: key}, nil
}
