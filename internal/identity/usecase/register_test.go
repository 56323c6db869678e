package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestRegister(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, time.Now())

	// Act
	out, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jane Librarian",
		Email:    "jane@example.com",
		Password: "Secret123!",
	})

	// Assert
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if out.UserID == 0 {
		t.Fatal("expected a generated user id")
	}
	if !strings.HasPrefix(out.QRCodeURL, "data:image/png;base64,") {
		t.Fatalf("expected a png data uri, got %q", out.QRCodeURL[:min(len(out.QRCodeURL), 30)])
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one created account, got %d", len(repo.created))
	}
	created := repo.created[0]
	if !created.OTPEnabled {
		t.Fatal("expected otp to be enabled for new accounts")
	}
	if created.PasswordHash == "Secret123!" {
		t.Fatal("expected password to be stored hashed")
	}
	if strings.Contains(string(created.OTPSecret), "otpauth") {
		t.Fatal("expected otp secret to be stored encrypted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, time.Now())

	if _, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jane Librarian",
		Email:    "jane@example.com",
		Password: "Secret123!",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Act
	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Another Jane",
		Email:    "jane@example.com",
		Password: "Other456!",
	})

	// Assert
	if err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusConflict {
		t.Fatalf("expected conflict, got status %d", status)
	}
}

func TestRegisterDisabled(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	repo.settings["allow_registration"] = "false"
	uc := newTestUsecase(t, repo, time.Now())

	// Act
	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jane Librarian",
		Email:    "jane@example.com",
		Password: "Secret123!",
	})

	// Assert
	if err == nil {
		t.Fatal("expected registration to be rejected while disabled")
	}
	if status := statusOf(t, err); status != http.StatusForbidden {
		t.Fatalf("expected forbidden, got status %d", status)
	}
	if len(repo.created) != 0 {
		t.Fatal("expected no account to be created")
	}
}

func TestRegisterInvalidInput(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, time.Now())

	// Act
	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jane Librarian",
		Email:    "not-an-email",
		Password: "short",
	})

	// Assert
	if err == nil {
		t.Fatal("expected invalid input to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusUnprocessableEntity {
		t.Fatalf("expected unprocessable entity, got status %d", status)
	}
}
