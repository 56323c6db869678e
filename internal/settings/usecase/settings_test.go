package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/openbiblio/biblio/internal/pkg/goerror"
	"github.com/openbiblio/biblio/internal/pkg/instrument"
	"github.com/openbiblio/biblio/internal/pkg/validator"
	"github.com/openbiblio/biblio/internal/settings/entity"
)

type fakeRepoDB struct {
	settings map[string]string
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{settings: map[string]string{}}
}

func (f *fakeRepoDB) GetSettingList(context.Context) ([]entity.Setting, error) {
	list := make([]entity.Setting, 0, len(f.settings))
	for k, v := range f.settings {
		list = append(list, entity.Setting{Key: k, Value: v})
	}

	return list, nil
}

func (f *fakeRepoDB) GetSettingValue(_ context.Context, key string) (string, error) {
	v, ok := f.settings[key]
	if !ok {
		return "", goerror.ErrNotFound
	}

	return v, nil
}

func (f *fakeRepoDB) UpsertSetting(_ context.Context, in entity.Setting) error {
	f.settings[in.Key] = in.Value

	return nil
}

func newTestUsecase(t *testing.T, repo *fakeRepoDB) *Usecase {
	t.Helper()

	v10, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator failed: %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		Validator:  v10,
		Instrument: instrument.NewNoop(),
	})
}

func TestUpdateAndList(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo)

	// Act
	if err := uc.Update(context.Background(), UpdateInput{Key: " site_name ", Value: "City Library"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := uc.Update(context.Background(), UpdateInput{Key: "site_name", Value: "Town Library"}); err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	out, err := uc.List(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(out.Settings) != 1 {
		t.Fatalf("expected upsert to keep a single key, got %d", len(out.Settings))
	}
	if out.Settings["site_name"] != "Town Library" {
		t.Fatalf("expected the latest value, got %q", out.Settings["site_name"])
	}
}

func TestUpdateMissingKey(t *testing.T) {
	// Arrange
	uc := newTestUsecase(t, newFakeRepoDB())

	// Act
	err := uc.Update(context.Background(), UpdateInput{Value: "orphan"})

	// Assert
	if err == nil {
		t.Fatal("expected a missing key to be rejected")
	}
	gerr, ok := err.(*goerror.Error)
	if !ok {
		t.Fatalf("expected *goerror.Error, got %T", err)
	}
	if gerr.StatusCode() != http.StatusUnprocessableEntity {
		t.Fatalf("expected unprocessable entity, got status %d", gerr.StatusCode())
	}
}

func TestRegistrationStatusDefault(t *testing.T) {
	// Arrange: no allow_registration key stored.
	uc := newTestUsecase(t, newFakeRepoDB())

	// Act
	out, err := uc.RegistrationStatus(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("registration status failed: %v", err)
	}
	if !out.Allowed {
		t.Fatal("expected registration to default to allowed")
	}
}

func TestRegistrationStatusDisabled(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.settings["allow_registration"] = "false"
	uc := newTestUsecase(t, repo)

	// Act
	out, err := uc.RegistrationStatus(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("registration status failed: %v", err)
	}
	if out.Allowed {
		t.Fatal("expected registration to be reported as closed")
	}
}
