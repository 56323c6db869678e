package db

import (
	"context"

	"github.com/openbiblio/biblio/internal/identity/entity"
)

const queryGetAccountAuthByEmail = `
SELECT id, name, email, password_hash, otp_secret, otp_enabled
FROM accounts
WHERE email = $1`

func (s *DB) GetAccountAuthByEmail(ctx context.Context, email string) (_ *entity.AccountAuth, err error) {
	ctx, span := s.startSpan(ctx, "GetAccountAuthByEmail")
	defer func() { s.endSpan(span, err) }()

	var acc entity.AccountAuth
	err = s.conn.QueryRow(ctx, queryGetAccountAuthByEmail, email).
		Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.OTPSecret, &acc.OTPEnabled)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &acc, nil
}

const queryCreateAccount = `
INSERT INTO accounts (id, name, email, password_hash, otp_secret, otp_enabled)
VALUES ($1, $2, $3, $4, $5, $6)`

func (s *DB) CreateAccount(ctx context.Context, in entity.NewAccount) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateAccount,
		in.ID, in.Name, in.Email, in.PasswordHash, in.OTPSecret, in.OTPEnabled)

	return s.mapError(err)
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
