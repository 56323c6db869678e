package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type BookReportInput struct {
	AcquiredFrom time.Time
	AcquiredTo   time.Time
	PublisherID  int64 `validate:"omitempty,gt=0"`
	CategoryID   int64 `validate:"omitempty,gt=0"`
	Author       string
	// Active filters by status when set; nil means both.
	Active *bool
}

type BookReportOutput struct {
	Books []entity.BookRow
}

func (s *Usecase) BookReport(ctx context.Context, in BookReportInput) (*BookReportOutput, error) {
	ctx, span := s.startSpan(ctx, "BookReport")
	defer span.End()

	in.Author = strings.TrimSpace(in.Author)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if !in.AcquiredFrom.IsZero() && !in.AcquiredTo.IsZero() && in.AcquiredTo.Before(in.AcquiredFrom) {
		return nil, goerror.NewInvalidInput(nil, "acquired_to", "must not be before acquired_from")
	}

	books, err := s.repoDB.GetBookReport(ctx, entity.BookReportFilter{
		AcquiredFrom: in.AcquiredFrom,
		AcquiredTo:   in.AcquiredTo,
		PublisherID:  in.PublisherID,
		CategoryID:   in.CategoryID,
		Author:       in.Author,
		Active:       in.Active,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get book report", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BookReportOutput{Books: books}, nil
}
