package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type BookUpdateInput struct {
	ID              int64  `validate:"required,gt=0"`
	Title           string `validate:"required,min=1,max=255"`
	Author          string `validate:"required,min=1,max=255"`
	ISBN            string `validate:"omitempty,max=32"`
	Quantity        int32  `validate:"omitempty,gte=0"`
	Observations    string `validate:"omitempty,max=2000"`
	Active          bool
	AcquisitionDate time.Time
	PublisherID     *int64
	CategoryID      *int64
}

func (s *Usecase) BookUpdate(ctx context.Context, in BookUpdateInput) error {
	ctx, span := s.startSpan(ctx, "BookUpdate")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if in.Quantity == 0 {
		in.Quantity = 1
	}

	err := s.repoDB.UpdateBook(ctx, entity.UpdateBook{
		ID:              in.ID,
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Quantity:        in.Quantity,
		Observations:    in.Observations,
		Active:          in.Active,
		AcquisitionDate: in.AcquisitionDate,
		PublisherID:     in.PublisherID,
		CategoryID:      in.CategoryID,
	})
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("book not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrConflict) {
		return goerror.NewBusiness("publisher or category does not exist", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update book", "book_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
