package db

import (
	"context"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

const queryGetPublisherList = `
SELECT id, name
FROM publishers
ORDER BY name ASC`

func (s *DB) GetPublisherList(ctx context.Context) (_ []entity.Publisher, err error) {
	ctx, span := s.startSpan(ctx, "GetPublisherList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetPublisherList)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	publishers := make([]entity.Publisher, 0)
	for rows.Next() {
		var p entity.Publisher
		if err = rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, s.mapError(err)
		}
		publishers = append(publishers, p)
	}

	return publishers, s.mapError(rows.Err())
}

func (s *DB) CreatePublisher(ctx context.Context, in entity.Publisher) (err error) {
	ctx, span := s.startSpan(ctx, "CreatePublisher")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, "INSERT INTO publishers (id, name) VALUES ($1, $2)", in.ID, in.Name)

	return s.mapError(err)
}

func (s *DB) DeletePublisher(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeletePublisher")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, "DELETE FROM publishers WHERE id = $1", id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
