package db

import (
	"context"

	"github.com/openbiblio/biblio/internal/settings/entity"
)

const queryGetSettingList = `
SELECT setting_key, setting_value
FROM system_settings
ORDER BY setting_key`

func (s *DB) GetSettingList(ctx context.Context) (_ []entity.Setting, err error) {
	ctx, span := s.startSpan(ctx, "GetSettingList")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryGetSettingList)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var settings []entity.Setting
	for rows.Next() {
		var st entity.Setting
		if err = rows.Scan(&st.Key, &st.Value); err != nil {
			return nil, s.mapError(err)
		}
		settings = append(settings, st)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return settings, nil
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

const queryUpsertSetting = `
INSERT INTO system_settings (setting_key, setting_value)
VALUES ($1, $2)
ON CONFLICT (setting_key) DO UPDATE SET setting_value = EXCLUDED.setting_value`

func (s *DB) UpsertSetting(ctx context.Context, in entity.Setting) (err error) {
	ctx, span := s.startSpan(ctx, "UpsertSetting")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryUpsertSetting, in.Key, in.Value)

	return s.mapError(err)
}
