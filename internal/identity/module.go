package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbiblio/biblio/internal/identity/inbound"
	"github.com/openbiblio/biblio/internal/identity/outbound/db"
	"github.com/openbiblio/biblio/internal/identity/usecase"
	"github.com/openbiblio/biblio/internal/pkg/clock"
	"github.com/openbiblio/biblio/internal/pkg/hash"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/jwt"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
	"github.com/openbiblio/biblio/internal/pkg/otp"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/router"
	"github.com/openbiblio/biblio/internal/pkg/uid"
	"github.com/openbiblio/biblio/internal/pkg/validator"
)

type Dependency struct {
	DBConn       *pgxpool.Pool              `validate:"required"`
	Router       *router.Router             `validate:"required"`
	Instrument   instrument.Instrumentation `validate:"required"`
	UID          uid.NumberID               `validate:"required"`
	Bcrypt       hash.Hash                  `validate:"required"`
	MFAEncryptor mfa.Encryptor              `validate:"required"`
	Clock        clock.Clocker              `validate:"required"`
	Totp         otp.OTP                    `validate:"required"`
	QR           qrcode.Encoder             `validate:"required"`
	Validator    validator.Validator        `validate:"required"`
	JWT          jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:       repo,
		Validator:    dep.Validator,
		Bcrypt:       dep.Bcrypt,
		MFAEncryptor: dep.MFAEncryptor,
		UID:          dep.UID,
		Totp:         dep.Totp,
		QR:           dep.QR,
		Clock:        dep.Clock,
		JWT:          dep.JWT,
		Instrument:   dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
