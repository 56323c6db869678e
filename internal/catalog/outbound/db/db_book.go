package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
)

const bookColumns = `b.id, b.title, b.author, b.isbn, b.quantity, b.observations, b.active,
b.acquisition_date, b.publisher_id, b.category_id, b.cover_path, b.created_at,
COALESCE(p.name, ''), COALESCE(c.name, '')`

const bookJoins = `FROM books b
LEFT JOIN publishers p ON p.id = b.publisher_id
LEFT JOIN categories c ON c.id = b.category_id`

func scanBookRow(row pgx.Row) (*entity.BookRow, error) {
	var b entity.BookRow
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.Quantity, &b.Observations, &b.Active,
		&b.AcquisitionDate, &b.PublisherID, &b.CategoryID, &b.CoverPath, &b.CreatedAt,
		&b.PublisherName, &b.CategoryName,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *DB) collectBookRows(ctx context.Context, query string, args ...any) ([]entity.BookRow, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]entity.BookRow, 0)
	for rows.Next() {
		b, err := scanBookRow(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *b)
	}

	return books, rows.Err()
}

func (s *DB) GetBookList(ctx context.Context) (_ []entity.BookRow, err error) {
	ctx, span := s.startSpan(ctx, "GetBookList")
	defer func() { s.endSpan(span, err) }()

	query := "SELECT " + bookColumns + "\n" + bookJoins + "\nORDER BY b.title ASC"

	books, err := s.collectBookRows(ctx, query)
	if err != nil {
		return nil, s.mapError(err)
	}

	return books, nil
}

func (s *DB) GetBookByID(ctx context.Context, id int64) (_ *entity.BookRow, err error) {
	ctx, span := s.startSpan(ctx, "GetBookByID")
	defer func() { s.endSpan(span, err) }()

	query := "SELECT " + bookColumns + "\n" + bookJoins + "\nWHERE b.id = $1"

	book, err := scanBookRow(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return book, nil
}

func (s *DB) GetPublicBookByID(ctx context.Context, id int64) (_ *entity.BookRow, err error) {
	ctx, span := s.startSpan(ctx, "GetPublicBookByID")
	defer func() { s.endSpan(span, err) }()

	query := "SELECT " + bookColumns + "\n" + bookJoins + "\nWHERE b.id = $1 AND b.active"

	book, err := scanBookRow(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return book, nil
}

const queryCreateBook = `
INSERT INTO books (id, title, author, isbn, quantity, observations, active,
	acquisition_date, publisher_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (s *DB) CreateBook(ctx context.Context, in entity.NewBook) (err error) {
	ctx, span := s.startSpan(ctx, "CreateBook")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateBook,
		in.ID, in.Title, in.Author, in.ISBN, in.Quantity, in.Observations, in.Active,
		in.AcquisitionDate, in.PublisherID, in.CategoryID)

	return s.mapError(err)
}

const queryUpdateBook = `
UPDATE books
SET title = $2, author = $3, isbn = $4, quantity = $5, observations = $6,
	active = $7, acquisition_date = $8, publisher_id = $9, category_id = $10
WHERE id = $1`

func (s *DB) UpdateBook(ctx context.Context, in entity.UpdateBook) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateBook")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateBook,
		in.ID, in.Title, in.Author, in.ISBN, in.Quantity, in.Observations,
		in.Active, in.AcquisitionDate, in.PublisherID, in.CategoryID)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

const queryUpdateBookCover = `
UPDATE books
SET cover_path = $2
WHERE id = $1`

func (s *DB) UpdateBookCover(ctx context.Context, id int64, coverPath string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateBookCover")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, queryUpdateBookCover, id, coverPath)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) DeleteBook(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteBook")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, "DELETE FROM books WHERE id = $1", id)
	if err != nil {
		return s.mapError(err)
	}

	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}

func (s *DB) GetBookReport(ctx context.Context, f entity.BookReportFilter) (_ []entity.BookRow, err error) {
	ctx, span := s.startSpan(ctx, "GetBookReport")
	defer func() { s.endSpan(span, err) }()

	var sb strings.Builder
	sb.WriteString("SELECT " + bookColumns + "\n" + bookJoins + "\nWHERE 1=1")

	args := make([]any, 0, 6)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !f.AcquiredFrom.IsZero() {
		sb.WriteString(" AND b.acquisition_date >= " + arg(f.AcquiredFrom))
	}
	if !f.AcquiredTo.IsZero() {
		sb.WriteString(" AND b.acquisition_date <= " + arg(f.AcquiredTo))
	}
	if f.PublisherID > 0 {
		sb.WriteString(" AND b.publisher_id = " + arg(f.PublisherID))
	}
	if f.CategoryID > 0 {
		sb.WriteString(" AND b.category_id = " + arg(f.CategoryID))
	}
	if f.Author != "" {
		sb.WriteString(" AND b.author ILIKE " + arg("%"+f.Author+"%"))
	}
	if f.Active != nil {
		sb.WriteString(" AND b.active = " + arg(*f.Active))
	}

	sb.WriteString(" ORDER BY b.acquisition_date DESC, b.title ASC")

	books, err := s.collectBookRows(ctx, sb.String(), args...)
	if err != nil {
		return nil, s.mapError(err)
	}

	return books, nil
}

const querySearchPublicBooks = `WHERE b.active AND (
	b.title ILIKE $1 OR b.author ILIKE $1 OR b.isbn ILIKE $1 OR b.observations ILIKE $1
)
ORDER BY b.title ASC`

func (s *DB) SearchPublicBooks(ctx context.Context, query string) (_ []entity.BookRow, err error) {
	ctx, span := s.startSpan(ctx, "SearchPublicBooks")
	defer func() { s.endSpan(span, err) }()

	q := "SELECT " + bookColumns + "\n" + bookJoins + "\n" + querySearchPublicBooks

	books, err := s.collectBookRows(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, s.mapError(err)
	}

	return books, nil
}

const queryGetSitemapBooks = `
SELECT id, created_at
FROM books
WHERE active
ORDER BY id ASC`

func (s *DB) GetSitemapBooks(ctx context.Context) (_ []entity.SitemapBook, err error) {
	ctx, span := s.startSpan(ctx, "GetSitemapBooks")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetSitemapBooks)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	books := make([]entity.SitemapBook, 0)
	for rows.Next() {
		var b entity.SitemapBook
		if err = rows.Scan(&b.ID, &b.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		books = append(books, b)
	}

	return books, s.mapError(rows.Err())
}
