package usecase

import (
	"context"

	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/validator"
	"github.com/openbiblio/biblio/internal/settings/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetSettingList(ctx context.Context) ([]entity.Setting, error)
	GetSettingValue(ctx context.Context, key string) (string, error)
	UpsertSetting(ctx context.Context, in entity.Setting) error
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("settings.usecase").Start(ctx, name)
}
