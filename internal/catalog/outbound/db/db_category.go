package db

import (
	"context"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

const queryGetCategoryList = `
SELECT id, name
FROM categories
ORDER BY name ASC`

func (s *DB) GetCategoryList(ctx context.Context) (_ []entity.Category, err error) {
	ctx, span := s.startSpan(ctx, "GetCategoryList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetCategoryList)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	categories := make([]entity.Category, 0)
	for rows.Next() {
		var c entity.Category
		if err = rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, s.mapError(err)
		}
		categories = append(categories, c)
	}

	return categories, s.mapError(rows.Err())
}

func (s *DB) CreateCategory(ctx context.Context, in entity.Category) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCategory")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, "INSERT INTO categories (id, name) VALUES ($1, $2)", in.ID, in.Name)

	return s.mapError(err)
}

func (s *DB) DeleteCategory(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCategory")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
