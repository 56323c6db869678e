package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openbiblio/biblio/internal/identity/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
)

// settingAllowRegistration toggles public staff registration. A missing key
// means registration is open.
const settingAllowRegistration = "allow_registration"

type RegisterInput struct {
	Name     string `validate:"required,min=3,max=100,alphaspace"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

type RegisterOutput struct {
	UserID    int64
	QRCodeURL string
}

func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if err := s.ensureRegistrationAllowed(ctx); err != nil {
		return nil, err
	}

	_, err := s.repoDB.GetAccountAuthByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get account by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	secret, uri, err := s.totp.Generate(in.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate totp secret", "error", err)
		return nil, goerror.NewServer(err)
	}

	newAccountID := s.uid.Generate()

	encSecret, err := s.mfaEncryptor.Encrypt([]byte(secret), mfa.Scope{
		UserID:  newAccountID,
		Purpose: mfa.PurposeOTPSeed,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encrypt totp secret", "error", err)
		return nil, goerror.NewServer(err)
	}

	err = s.repoDB.CreateAccount(ctx, entity.NewAccount{
		ID:           newAccountID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		OTPSecret:    encSecret,
		OTPEnabled:   true, // every account authenticates with TOTP
	})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("email already registered", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create account", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	qrDataURI, err := s.qr.DataURI(uri, 256)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode provisioning qr code", "user_id", newAccountID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{
		UserID:    newAccountID,
		QRCodeURL: qrDataURI,
	}, nil
}

func (s *Usecase) ensureRegistrationAllowed(ctx context.Context) error {
	value, err := s.repoDB.GetSettingValue(ctx, settingAllowRegistration)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get registration setting", "error", err)
		return goerror.NewServer(err)
	}

	if value == "false" {
		slog.WarnContext(ctx, "registration attempt while disabled")
		return goerror.NewBusiness("registration is disabled", goerror.CodeForbidden)
	}

	return nil
}
