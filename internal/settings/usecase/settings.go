package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/settings/entity"
)

// settingAllowRegistration toggles public staff registration. A missing key
// means registration is open.
const settingAllowRegistration = "allow_registration"

type ListOutput struct {
	Settings map[string]string
}

func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	settings, err := s.repoDB.GetSettingList(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get setting list", "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &ListOutput{Settings: make(map[string]string, len(settings))}
	for _, st := range settings {
		out.Settings[st.Key] = st.Value
	}

	return out, nil
}

type UpdateInput struct {
	Key   string `validate:"required,min=1,max=100"`
	Value string `validate:"max=2000"`
}

func (s *Usecase) Update(ctx context.Context, in UpdateInput) error {
	ctx, span := s.startSpan(ctx, "Update")
	defer span.End()

	in.Key = strings.TrimSpace(in.Key)

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	if err := s.repoDB.UpsertSetting(ctx, entity.Setting{Key: in.Key, Value: in.Value}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert setting", "key", in.Key, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

type RegistrationStatusOutput struct {
	Allowed bool
}

// RegistrationStatus reports whether public registration is open. The value
// is read per request; an absent key means allowed.
func (s *Usecase) RegistrationStatus(ctx context.Context) (*RegistrationStatusOutput, error) {
	ctx, span := s.startSpan(ctx, "RegistrationStatus")
	defer span.End()

	value, err := s.repoDB.GetSettingValue(ctx, settingAllowRegistration)
	if errors.Is(err, goerror.ErrNotFound) {
		return &RegistrationStatusOutput{Allowed: true}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get registration setting", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegistrationStatusOutput{Allowed: value != "false"}, nil
}
