package db

import (
	"context"

	"github.com/openbiblio/biblio/internal/catalog/entity"
)

const queryGetDashboardTotals = `
SELECT
	(SELECT COUNT(*) FROM books),
	(SELECT COUNT(*) FROM books WHERE active),
	(SELECT COUNT(*) FROM accounts),
	(SELECT COUNT(*) FROM publishers),
	(SELECT COUNT(*) FROM categories)`

func (s *DB) GetDashboardTotals(ctx context.Context) (_ *entity.DashboardTotals, err error) {
	ctx, span := s.startSpan(ctx, "GetDashboardTotals")
	defer func() { s.endSpan(span, err) }()

	var t entity.DashboardTotals
	err = s.conn.QueryRow(ctx, queryGetDashboardTotals).
		Scan(&t.Books, &t.ActiveBooks, &t.Accounts, &t.Publishers, &t.Categories)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &t, nil
}

const queryGetSettingValue = `
SELECT setting_value
FROM system_settings
WHERE setting_key = $1`

func (s *DB) GetSettingValue(ctx context.Context, key string) (_ string, err error) {
	ctx, span := s.startSpan(ctx, "GetSettingValue")
	defer func() { s.endSpan(span, err) }()

	var value string
	if err = s.conn.QueryRow(ctx, queryGetSettingValue, key).Scan(&value); err != nil {
		return "", s.mapError(err)
	}

	return value, nil
}
