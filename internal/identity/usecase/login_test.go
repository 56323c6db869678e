package usecase

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	libOTP "github.com/pquerna/otp"
	"github.com/openbiblio/biblio/internal/pkg/mfa"
	"github.com/openbiblio/biblio/internal/pkg/otp"
)

// totpCodeFor decrypts the stored seed the way the login flow does and derives
// the code a user's authenticator app would show at the given time.
func totpCodeFor(t *testing.T, repo *fakeRepoDB, email string, at time.Time) string {
	t.Helper()

	acc := repo.accounts[email]
	if acc == nil {
		t.Fatalf("no account seeded for %q", email)
	}

	enc := mfa.NewAESGCMEncryptor(mfa.StaticKeyProvider{KeyBytes: bytes.Repeat([]byte{0x11}, 32)})
	secret, err := enc.Decrypt(acc.OTPSecret, mfa.Scope{UserID: acc.ID, Purpose: mfa.PurposeOTPSeed})
	if err != nil {
		t.Fatalf("decrypt otp seed failed: %v", err)
	}

	code, err := otp.NewTOTP("Biblio", 30, 1, libOTP.DigitsSix).GenerateCode(string(secret), at)
	if err != nil {
		t.Fatalf("generate totp code failed: %v", err)
	}

	return code
}

func registerAccount(t *testing.T, uc *Usecase) {
	t.Helper()

	_, err := uc.Register(context.Background(), RegisterInput{
		Name:     "Jane Librarian",
		Email:    "jane@example.com",
		Password: "Secret123!",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
}

func TestLoginOtpChallenge(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, time.Now())
	registerAccount(t, uc)

	// Act
	out, err := uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Secret123!",
	})

	// Assert
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !out.OtpRequired {
		t.Fatal("expected an otp challenge")
	}
	if out.AccessToken != "" || out.User != nil {
		t.Fatal("expected no token or user before otp verification")
	}
}

func TestLoginWithOtp(t *testing.T) {
	// Arrange
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, now)
	registerAccount(t, uc)

	// Act
	out, err := uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Secret123!",
		OTP:      totpCodeFor(t, repo, "jane@example.com", now),
	})

	// Assert
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if out.OtpRequired {
		t.Fatal("did not expect another otp challenge")
	}
	if out.AccessToken == "" {
		t.Fatal("expected an access token")
	}
	if out.User == nil || out.User.Email != "jane@example.com" {
		t.Fatalf("unexpected user payload: %+v", out.User)
	}
}

func TestLoginStaleOtp(t *testing.T) {
	// Arrange
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, now)
	registerAccount(t, uc)

	// Act: present a code derived for a long-gone time window.
	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Secret123!",
		OTP:      totpCodeFor(t, repo, "jane@example.com", now.Add(-10*time.Minute)),
	})

	// Assert
	if err == nil {
		t.Fatal("expected a stale otp code to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got status %d", status)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, time.Now())
	registerAccount(t, uc)

	// Act
	_, err := uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Wrong456!",
	})

	// Assert
	if err == nil {
		t.Fatal("expected wrong password to be rejected")
	}
	if status := statusOf(t, err); status != http.StatusUnauthorized {
		t.Fatalf("expected unauthorized, got status %d", status)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	// Arrange
	repo := newFakeRepoDB()
	uc := newTestUsecase(t, repo, time.Now())
	registerAccount(t, uc)

	// Act
	_, errUnknown := uc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "Secret123!",
	})
	_, errWrongPass := uc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "Wrong456!",
	})

	// Assert: unknown email and wrong password are indistinguishable.
	if errUnknown == nil || errWrongPass == nil {
		t.Fatal("expected both logins to fail")
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Fatalf("expected identical errors, got %q and %q", errUnknown, errWrongPass)
	}
}
