package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type PublicBookDetailInput struct {
	ID int64 `validate:"required,gt=0"`
}

type PublicBookDetailOutput struct {
	Book entity.BookRow
}

// PublicBookDetail returns an active book for unauthenticated visitors.
// Inactive books are indistinguishable from missing ones.
func (s *Usecase) PublicBookDetail(ctx context.Context, in PublicBookDetailInput) (*PublicBookDetailOutput, error) {
	ctx, span := s.startSpan(ctx, "PublicBookDetail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	book, err := s.repoDB.GetPublicBookByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("book not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get public book by id", "book_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PublicBookDetailOutput{Book: *book}, nil
}
