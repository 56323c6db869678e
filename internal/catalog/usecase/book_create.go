package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/idempotency"
)

type BookCreateInput struct {
	Title           string `validate:"required,min=1,max=255"`
	Author          string `validate:"required,min=1,max=255"`
	ISBN            string `validate:"omitempty,max=32"`
	Quantity        int32  `validate:"omitempty,gte=0"`
	Observations    string `validate:"omitempty,max=2000"`
	Active          bool
	AcquisitionDate time.Time
	PublisherID     *int64
	CategoryID      *int64
	// IdempotencyKey guards against duplicate submissions when set.
	IdempotencyKey string
}

type BookCreateOutput struct {
	ID int64
}

func (s *Usecase) BookCreate(ctx context.Context, in BookCreateInput) (*BookCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "BookCreate")
	defer span.End()

	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.AcquisitionDate.IsZero() {
		in.AcquisitionDate = s.clock.Now()
	}

	newBookID := s.uid.Generate()
	create := func(ctx context.Context) error {
		return s.repoDB.CreateBook(ctx, entity.NewBook{
			ID:              newBookID,
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
	}

	var err error
	if in.IdempotencyKey != "" {
		err = s.idemp.Exec(ctx, "catalog:book:create:"+in.IdempotencyKey, create)
		if errors.Is(err, idempotency.ErrAlreadyCompleted) ||
			errors.Is(err, idempotency.ErrAlreadyInProgress) ||
			errors.Is(err, idempotency.ErrAlreadyFailed) {
			return nil, goerror.NewBusiness("duplicate request", goerror.CodeConflict)
		}
	} else {
		err = create(ctx)
	}

	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("publisher or category does not exist", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create book", "title", in.Title, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &BookCreateOutput{ID: newBookID}, nil
}
