package catalog

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbiblio/biblio/internal/catalog/inbound"
	"github.com/openbiblio/biblio/internal/catalog/outbound/db"
	"github.com/openbiblio/biblio/internal/catalog/usecase"
	"github.com/openbiblio/biblio/internal/pkg/clock"
	"github.com/openbiblio/biblio/internal/pkg/config"
	"github.com/openbiblio/biblio/internal/pkg/goroutine"
	"github.com/openbiblio/biblio/internal/pkg/idempotency"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/router"
	"github.com/openbiblio/biblio/internal/pkg/storage"
	"github.com/openbiblio/biblio/internal/pkg/uid"
	"github.com/openbiblio/biblio/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Blob        storage.Blob               `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	QR          qrcode.Encoder             `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repo := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:      repo,
		Validator:   dep.Validator,
		Config:      dep.Config,
		Blob:        dep.Blob,
		Idempotency: dep.Idempotency,
		UID:         dep.UID,
		QR:          dep.QR,
		Clock:       dep.Clock,
		Instrument:  dep.Instrument,
		Goroutine:   dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
