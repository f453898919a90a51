package service

import (
	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/repository"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	users := &stubUsers{}
	svc := NewAuthService(users, testSecret, time.Hour)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", " Ada@Example.com ", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash != "" {
		t.Error("password hash must not be returned")
	}
	if users.byEmail["ada@example.com"] == nil {
		t.Fatal("email should be stored normalized")
	}

	token, loggedIn, err := svc.Login(ctx, "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if loggedIn.ID != user.ID {
		t.Errorf("login returned user %s, want %s", loggedIn.ID.Hex(), user.ID.Hex())
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(svc.GetJWTSecret()), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	if claims.UserID != user.ID.Hex() || claims.Role != domain.RoleUser {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	users := &stubUsers{}
	svc := NewAuthService(users, testSecret, time.Hour)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "password123"); !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("expected ErrUserAlreadyExists, got %v", err)
	}

	racing := &stubUsers{createErr: repository.ErrDuplicate}
	svc = NewAuthService(racing, testSecret, time.Hour)
	if _, err := svc.Register(ctx, "Bob", "bob@example.com", "password123"); !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("expected duplicate insert to map to ErrUserAlreadyExists, got %v", err)
	}
}

func TestLoginFailures(t *testing.T) {
	users := &stubUsers{}
	svc := NewAuthService(users, testSecret, time.Hour)
	ctx := context.Background()
	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cases := map[string][2]string{
		"wrong password": {"ada@example.com", "nope"},
		"unknown email":  {"who@example.com", "password123"},
		"empty":          {"", ""},
	}
	for name, c := range cases {
		if _, _, err := svc.Login(ctx, c[0], c[1]); !errors.Is(err, ErrAuthenticationFailed) {
			t.Errorf("%s: expected ErrAuthenticationFailed, got %v", name, err)
		}
	}
}
