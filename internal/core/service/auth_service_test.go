package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by email
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}

type stubLimiter struct {
	blocked  bool
	failures int
}

func (l *stubLimiter) TooManyFailures(context.Context, string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) RecordFailure(context.Context, string) error {
	l.failures++
	return nil
}

func newTestAuthService(repo *stubUserRepo, limiter LoginLimiter) *AuthService {
	issuer := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, issuer, limiter, zerolog.Nop())
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{Name: "Alice", Email: email, Password: "pass123", Mobile: "5550001"}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	id, err := svc.Register(context.Background(), registerInput("alice@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected user id, got empty")
	}

	stored := repo.users["alice@example.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if stored.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, stored.Role)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	in := registerInput("a@x.com")
	in.Password = ""
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), registerInput("bob@example.com")); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("bob@example.com")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("duplicate register created a record")
	}
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), registerInput("carol@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "pass123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["email"] != "carol@example.com" || claims["id"] != user.ID || claims["role"] != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newTestAuthService(repo, limiter)

	_, _ = svc.Register(context.Background(), registerInput("dave@example.com"))
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubLimiter{blocked: true})

	_, _ = svc.Register(context.Background(), registerInput("eve@example.com"))
	if _, _, err := svc.Login(context.Background(), "eve@example.com", "pass123"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_GetProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), registerInput("frank@example.com"))

	user, err := svc.GetProfile(context.Background(), "frank@example.com")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if user.Email != "frank@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetProfile(context.Background(), "nobody@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_UpdateProfile_PatchSemantics(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), registerInput("gina@example.com"))

	updated, err := svc.UpdateProfile(context.Background(), "gina@example.com", ports.ProfilePatch{
		Address: "1 Main St",
		Age:     30,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Alice" {
		t.Fatalf("zero-value name should leave stored name unchanged, got %q", updated.Name)
	}
	if updated.Address != "1 Main St" || updated.Age != 30 {
		t.Fatalf("patch not applied: %+v", updated)
	}

	before := repo.users["gina@example.com"].PasswordHash
	if before != updated.PasswordHash {
		t.Fatalf("update path must not touch the password hash")
	}
}

func TestAuthService_UpdateProfile_UploadBeatsURL(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), registerInput("hal@example.com"))

	updated, err := svc.UpdateProfile(context.Background(), "hal@example.com", ports.ProfilePatch{
		ImageURL:      "http://example.com/remote.png",
		UploadedImage: "uploads/abc.png",
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.ProfileImage != "uploads/abc.png" {
		t.Fatalf("uploaded image must win, got %q", updated.ProfileImage)
	}
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if _, err := svc.UpdateProfile(context.Background(), "nobody@example.com", ports.ProfilePatch{Name: "X"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
