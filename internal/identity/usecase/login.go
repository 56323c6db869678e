package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	OTP      string `validate:"omitempty,len=6"`
}

type LoginUser struct {
	ID    int64
	Name  string
	Email string
}

type LoginOutput struct {
	OtpRequired bool
	User        *LoginUser
	AccessToken string
}

func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	in.OTP = strings.TrimSpace(in.OTP)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	acc, err := s.repoDB.GetAccountAuthByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "email", in.Email)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(acc.PasswordHash, in.Password) {
		slog.WarnContext(ctx, "account password not match", "user_id", acc.ID)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}

	if acc.OTPEnabled {
		if in.OTP == "" {
			return &LoginOutput{OtpRequired: true}, nil
		}

		if err := s.verifyTOTP(ctx, acc.ID, acc.OTPSecret, in.OTP); err != nil {
			return nil, err
		}
	}

	acToken, err := s.jwt.Generate(acc.ID, acc.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access jwt token", "user_id", acc.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{
		User: &LoginUser{
			ID:    acc.ID,
			Name:  acc.Name,
			Email: acc.Email,
		},
		AccessToken: acToken,
	}, nil
}

func (s *Usecase) verifyTOTP(ctx context.Context, userID int64, encSecret []byte, code string) error {
	if !s.isValidTOTPCode(code) {
		slog.WarnContext(ctx, "totp code has invalid format", "user_id", userID)
		return goerror.NewBusiness("invalid otp code", goerror.CodeUnauthorized)
	}

	secret, err := s.mfaEncryptor.Decrypt(encSecret, mfa.Scope{
		UserID:  userID,
		Purpose: mfa.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to decrypt totp secret", "user_id", userID, "error", err)
		return goerror.NewServer(err)
	}

	if !s.totp.Validate(code, string(secret), s.clock.Now()) {
		slog.WarnContext(ctx, "invalid totp code", "user_id", userID)
		return goerror.NewBusiness("invalid otp code", goerror.CodeUnauthorized)
	}

	return nil
}

func (s *Usecase) isValidTOTPCode(code string) bool {
	if len(code) != 6 { // 6 is length of totp
		return false
	}

	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	return true
}
