package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type PublisherListOutput struct {
	Publishers []entity.Publisher
}

func (s *Usecase) PublisherList(ctx context.Context) (*PublisherListOutput, error) {
	ctx, span := s.startSpan(ctx, "PublisherList")
	defer span.End()

	publishers, err := s.repoDB.GetPublisherList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get publisher list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PublisherListOutput{Publishers: publishers}, nil
}

type PublisherCreateInput struct {
	Name string `validate:"required,min=1,max=255"`
}

type PublisherCreateOutput struct {
	ID int64
}

func (s *Usecase) PublisherCreate(ctx context.Context, in PublisherCreateInput) (*PublisherCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "PublisherCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	newID := s.uid.Generate()
	err := s.repoDB.CreatePublisher(ctx, entity.Publisher{ID: newID, Name: in.Name})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("publisher already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create publisher", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PublisherCreateOutput{ID: newID}, nil
}

type PublisherDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) PublisherDelete(ctx context.Context, in PublisherDeleteInput) error {
	ctx, span := s.startSpan(ctx, "PublisherDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeletePublisher(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("publisher not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrConflict) {
		return goerror.NewBusiness("publisher is in use by books", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete publisher", "publisher_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
