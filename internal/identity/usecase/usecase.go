package usecase

import (
	"context"

	"github.com/openbiblio/biblio/internal/identity/entity"
	"github.com/openbiblio/biblio/internal/pkg/clock"
	"github.com/openbiblio/biblio/internal/pkg/hash"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/jwt"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
	"github.com/openbiblio/biblio/internal/pkg/otp"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/uid"
	"github.com/openbiblio/biblio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetAccountAuthByEmail(ctx context.Context, email string) (*entity.AccountAuth, error)
	CreateAccount(ctx context.Context, in entity.NewAccount) error
	GetSettingValue(ctx context.Context, key string) (string, error)
}

type Usecase struct {
	repoDB       repoDB
	validator    validator.Validator
	bcrypt       hash.Hash
	mfaEncryptor mfa.Encryptor
	uid          uid.NumberID
	totp         otp.OTP
	qr           qrcode.Encoder
	clock        clock.Clocker
	jwt          jwt.JWT
	ins          instrument.Instrumentation
}

type Dependency struct {
	RepoDB       repoDB
	Validator    validator.Validator
	Bcrypt       hash.Hash
	MFAEncryptor mfa.Encryptor
	UID          uid.NumberID
	Totp         otp.OTP
	QR           qrcode.Encoder
	Clock        clock.Clocker
	JWT          jwt.JWT
	Instrument   instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:       dep.RepoDB,
		validator:    dep.Validator,
		bcrypt:       dep.Bcrypt,
		mfaEncryptor: dep.MFAEncryptor,
		uid:          dep.UID,
		totp:         dep.Totp,
		qr:           dep.QR,
		clock:        dep.Clock,
		jwt:          dep.JWT,
		ins:          dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
