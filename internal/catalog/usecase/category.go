package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

type CategoryListOutput struct {
	Categories []entity.Category
}

func (s *Usecase) CategoryList(ctx context.Context) (*CategoryListOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryList")
	defer span.End()

	categories, err := s.repoDB.GetCategoryList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get category list", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryListOutput{Categories: categories}, nil
}

type CategoryCreateInput struct {
	Name string `validate:"required,min=1,max=255"`
}

type CategoryCreateOutput struct {
	ID int64
}

func (s *Usecase) CategoryCreate(ctx context.Context, in CategoryCreateInput) (*CategoryCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "CategoryCreate")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	newID := s.uid.Generate()
	err := s.repoDB.CreateCategory(ctx, entity.Category{ID: newID, Name: in.Name})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("category already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create category", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CategoryCreateOutput{ID: newID}, nil
}

type CategoryDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) CategoryDelete(ctx context.Context, in CategoryDeleteInput) error {
	ctx, span := s.startSpan(ctx, "CategoryDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeleteCategory(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("category not found", goerror.CodeNotFound)
	}
	if errors.Is(err, goerror.ErrConflict) {
		return goerror.NewBusiness("category is in use by books", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete category", "category_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
