package usecase

import (
	"context"
	"log/slog"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type BookListOutput struct {
	Books []entity.BookRow
}

func (s *Usecase) BookList(ctx context.Context) (*BookListOutput, error) {
	ctx, span := s.startSpan(ctx, "BookList")
	defer span.End()

	books, err := s.repoDB.GetBookList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get book list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BookListOutput{Books: books}, nil
}
