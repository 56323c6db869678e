package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type PublicSearchInput struct {
	Query string `validate:"omitempty,max=255"`
}

type PublicSearchOutput struct {
	Books []entity.BookRow
}

func (s *Usecase) PublicSearch(ctx context.Context, in PublicSearchInput) (*PublicSearchOutput, error) {
	ctx, span := s.startSpan(ctx, "PublicSearch")
	defer span.End()

	in.Query = strings.TrimSpace(in.Query)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	books, err := s.repoDB.SearchPublicBooks(ctx, in.Query)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo search public books", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PublicSearchOutput{Books: books}, nil
}
