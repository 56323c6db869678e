package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	libOTP "github.com/pquerna/otp"
	"github.com/openbiblio/biblio/internal/identity/entity"
	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/hash"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/jwt"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
	"github.com/openbiblio/biblio/internal/pkg/otp"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/validator"
)

type fakeRepoDB struct {
	accounts  map[string]*entity.AccountAuth
	settings  map[string]string
	created   []entity.NewAccount
	createErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{
		accounts: map[string]*entity.AccountAuth{},
		settings: map[string]string{},
	}
}

func (f *fakeRepoDB) GetAccountAuthByEmail(_ context.Context, email string) (*entity.AccountAuth, error) {
	acc, ok := f.accounts[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return acc, nil
}

func (f *fakeRepoDB) CreateAccount(_ context.Context, in entity.NewAccount) error {
	if f.createErr != nil {
		return f.createErr
	}

	f.created = append(f.created, in)
	f.accounts[in.Email] = &entity.AccountAuth{
		ID:           in.ID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		OTPSecret:    in.OTPSecret,
		OTPEnabled:   in.OTPEnabled,
	}

	return nil
}

func (f *fakeRepoDB) GetSettingValue(_ context.Context, key string) (string, error) {
	v, ok := f.settings[key]
	if !ok {
		return "", goerror.ErrNotFound
	}

	return v, nil
}

type sequenceID struct{ next int64 }

func (s *sequenceID) Generate() int64 {
	s.next++

	return s.next
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUUID struct{}

func (fixedUUID) Generate() string { return "token-id" }

func newTestUsecase(t *testing.T, repo *fakeRepoDB, now time.Time) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator failed: %v", err)
	}

	testJWT, err := jwt.NewHS512(jwt.Config{
		Secret:     bytes.Repeat([]byte("k"), 64),
		Issuer:     "biblio",
		Audiences:  []string{"biblio-web"},
		TTLMinutes: time.Hour,
		Clock:      fixedClock{now: now},
		UUID:       fixedUUID{},
	})
	if err != nil {
		t.Fatalf("new jwt failed: %v", err)
	}

	return New(Dependency{
		RepoDB:       repo,
		Validator:    v10,
		Bcrypt:       hash.NewBcrypt(4, ""),
		MFAEncryptor: mfa.NewAESGCMEncryptor(mfa.StaticKeyProvider{KeyBytes: bytes.Repeat([]byte{0x11}, 32)}),
		UID:          &sequenceID{},
		Totp:         otp.NewTOTP("Biblio", 30, 1, libOTP.DigitsSix),
		QR:           qrcode.NewQR(),
		Clock:        fixedClock{now: now},
		JWT:          testJWT,
		Instrument:   instrument.NewNoop(),
	})
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	gerr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("expected *goerror.Error, got %T: %v", err, err)
	}

	return gerr.StatusCode()
}
