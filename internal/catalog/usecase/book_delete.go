package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type BookDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) BookDelete(ctx context.Context, in BookDeleteInput) error {
	ctx, span := s.startSpan(ctx, "BookDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	book, err := s.repoDB.GetBookByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("book not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get book by id", "book_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.DeleteBook(ctx, in.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete book", "book_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if book.CoverPath != "" {
		bucket := s.cfg.GetString("storage.bucket")
		coverPath := book.CoverPath
		s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
			if err := s.blob.Delete(ctx, bucket, coverPath); err != nil {
				slog.ErrorContext(ctx, "failed to delete book cover object", "book_id", in.ID, "key", coverPath, "error", err)
				return err
			}
			return nil
		})
	}

	return nil
}
