package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/admin-console/internal/core/domain"
	"github.com/backoffice/admin-console/internal/core/ports"
)

func newAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, NewBcryptHasher(), NewTokenService("secret"), nil, zerolog.Nop())
}

func registerInput(email, username string) ports.RegisterInput {
	return ports.RegisterInput{
		FullName:    "Ann Example",
		Email:       email,
		PhoneNumber: "555",
		Username:    username,
		Password:    "password1",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), registerInput("ann@x.com", "ann"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "password1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	input := registerInput("ann@x.com", "ann")
	input.Role = "superadmin"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("ann@x.com", "ann")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), registerInput("ann@x.com", "ann2")); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("expected record count unchanged at 1, got %d", n)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("ann@x.com", "ann")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	if _, err := svc.Register(context.Background(), registerInput("bob@x.com", "ann")); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if n, _ := repo.Count(context.Background()); n != 1 {
		t.Fatalf("expected record count unchanged at 1, got %d", n)
	}
}

func TestAuthService_Register_InvalidatesCountCache(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubCountCache()
	authSvc := NewAuthService(repo, NewBcryptHasher(), NewTokenService("secret"), cache, zerolog.Nop())
	userSvc := NewUserService(repo, NewBcryptHasher(), cache, zerolog.Nop())

	// prime the cache with the pre-registration count
	n, err := userSvc.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("CountUsers returned error: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 before registration, got %d", n)
	}

	if _, err := authSvc.Register(context.Background(), registerInput("ann@x.com", "ann")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if cache.invalidates != 1 {
		t.Fatalf("expected registration to invalidate the cached count, invalidates=%d", cache.invalidates)
	}

	n, err = userSvc.CountUsers(context.Background())
	if err != nil {
		t.Fatalf("CountUsers returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("dashboard count stale after registration: got %d, want 1", n)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := registerInput("carol@x.com", "carol")
	input.Role = domain.RoleAdmin
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@x.com", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected subject %s, got %v", user.ID, claims["sub"])
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput("dave@x.com", "dave")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "dave@x.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	// Unknown email and wrong password must be indistinguishable.
	if _, _, err := svc.Login(context.Background(), "ghost@x.com", "password1"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
