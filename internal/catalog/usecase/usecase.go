package usecase

import (
	"context"

	"github.com/openbiblio/biblio/internal/catalog/entity"
	"github.com/openbiblio/biblio/internal/pkg/clock"
	"github.com/openbiblio/biblio/internal/pkg/config"
	"github.com/openbiblio/biblio/internal/pkg/goroutine"
	"github.com/openbiblio/biblio/internal/pkg/idempotency"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/qrcode"
	"github.com/openbiblio/biblio/internal/pkg/storage"
	"github.com/openbiblio/biblio/internal/pkg/uid"
	"github.com/openbiblio/biblio/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetBookList(ctx context.Context) ([]entity.BookRow, error)
	GetBookByID(ctx context.Context, id int64) (*entity.BookRow, error)
	CreateBook(ctx context.Context, in entity.NewBook) error
	UpdateBook(ctx context.Context, in entity.UpdateBook) error
	UpdateBookCover(ctx context.Context, id int64, coverPath string) error
	DeleteBook(ctx context.Context, id int64) error
	GetBookReport(ctx context.Context, f entity.BookReportFilter) ([]entity.BookRow, error)
	SearchPublicBooks(ctx context.Context, query string) ([]entity.BookRow, error)
	GetPublicBookByID(ctx context.Context, id int64) (*entity.BookRow, error)
	GetSitemapBooks(ctx context.Context) ([]entity.SitemapBook, error)

	GetPublisherList(ctx context.Context) ([]entity.Publisher, error)
	CreatePublisher(ctx context.Context, in entity.Publisher) error
	DeletePublisher(ctx context.Context, id int64) error

	GetCategoryList(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, in entity.Category) error
	DeleteCategory(ctx context.Context, id int64) error

	GetDashboardTotals(ctx context.Context) (*entity.DashboardTotals, error)
	GetSettingValue(ctx context.Context, key string) (string, error)
}

// idempotent is the slice of idempotency.Idempotency this usecase needs.
type idempotent interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...idempotency.Option) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	blob      storage.Blob
	idemp     idempotent
	uid       uid.NumberID
	qr        qrcode.Encoder
	clock     clock.Clocker
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	RepoDB      repoDB
	Validator   validator.Validator
	Config      config.Config
	Blob        storage.Blob
	Idempotency idempotent
	UID         uid.NumberID
	QR          qrcode.Encoder
	Clock       clock.Clocker
	Instrument  instrument.Instrumentation
	Goroutine   *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		blob:      dep.Blob,
		idemp:     dep.Idempotency,
		uid:       dep.UID,
		qr:        dep.QR,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}
