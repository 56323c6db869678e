package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type BookDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type BookDetailOutput struct {
	Book entity.BookRow
}

func (s *Usecase) BookDetail(ctx context.Context, in BookDetailInput) (*BookDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "BookDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	book, err := s.repoDB.GetBookByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("book not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get book by id", "book_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BookDetailOutput{Book: *book}, nil
}
