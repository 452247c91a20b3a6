package users

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"resume-vault/internal/shared/auth"
)

func newTestService() *Service {
	return NewService(NewMemoryRepo(), auth.NewTokens("test-secret"))
}

func TestSignupHashesPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.Signup(ctx, "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	user, err := svc.Repo.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if user.PasswordHash == "hunter22" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if user.ID == "" {
		t.Fatal("user id not assigned")
	}
}

func TestSignupRejectsEmptyFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, tc := range []struct{ email, password string }{
		{"", "hunter22"},
		{"jane@example.com", ""},
		{"   ", "hunter22"},
	} {
		if err := svc.Signup(ctx, tc.email, tc.password); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Signup(%q, %q): got %v, want ErrInvalidInput", tc.email, tc.password, err)
		}
	}
}

func TestSignupDuplicateEmailMapsToTaken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.Signup(ctx, "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	if err := svc.Signup(ctx, "JANE@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("second Signup: got %v, want ErrEmailTaken", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.Signup(ctx, "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	token, err := svc.Login(ctx, "jane@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := svc.Tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	user, err := svc.Repo.GetByID(ctx, userID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("token subject resolves to %q", user.Email)
	}
}

func TestLoginDoesNotRevealWhichFieldFailed(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.Signup(ctx, "jane@example.com", "hunter22"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, wrongPass := svc.Login(ctx, "jane@example.com", "bad")
	_, unknownEmail := svc.Login(ctx, "nobody@example.com", "hunter22")

	if !errors.Is(wrongPass, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("errors differ: %q vs %q", wrongPass, unknownEmail)
	}
}

func TestProfileUnknownUser(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Profile(context.Background(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if _, err := svc.Profile(context.Background(), "  "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("blank id: got %v, want ErrNotFound", err)
	}
}
