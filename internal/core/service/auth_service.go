package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// LoginLimiter throttles repeated failed logins per account. A nil limiter
// disables the check.
type LoginLimiter interface {
	// TooManyFailures reports whether the account has exhausted its window.
	TooManyFailures(ctx context.Context, email string) (bool, error)
	// RecordFailure counts one failed attempt against the account.
	RecordFailure(ctx context.Context, email string) error
}

// AuthService implements registration, login and profile management.
type AuthService struct {
	repo    ports.UserRepository
	issuer  ports.TokenIssuer
	limiter LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer, limiter LoginLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, limiter: limiter, log: log}
}

// Register creates a new user with role "user" and returns its id. The
// existence check is backed by a unique index on email, so a concurrent
// duplicate insert still surfaces as domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.Mobile == "" {
		return "", domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Mobile:       in.Mobile,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("email", created.Email).Str("user_id", created.ID).Msg("user registered")
	return created.ID, nil
}

// Login verifies credentials and returns a signed bearer token embedding
// the user's email, id and role as of this moment.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyFailures(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Str("email", email).Msg("login limiter check failed, proceeding")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		if s.limiter != nil {
			if lerr := s.limiter.RecordFailure(ctx, email); lerr != nil {
				s.log.Warn().Err(lerr).Str("email", email).Msg("failed to record login failure")
			}
		}
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(domain.TokenClaims{
		Email:  user.Email,
		UserID: user.ID,
		Role:   user.Role,
	})
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// GetProfile returns the stored record for the given email. The password
// hash never reaches the client: the domain struct hides it from JSON.
func (s *AuthService) GetProfile(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// UpdateProfile applies the non-zero fields of patch. An uploaded image
// takes precedence over an image URL supplied in the same request. The
// password is not touched by this path.
func (s *AuthService) UpdateProfile(ctx context.Context, email string, patch ports.ProfilePatch) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Mobile != "" {
		user.Mobile = patch.Mobile
	}
	if patch.Address != "" {
		user.Address = patch.Address
	}
	if patch.Age != 0 {
		user.Age = patch.Age
	}
	switch {
	case patch.UploadedImage != "":
		user.ProfileImage = patch.UploadedImage
	case patch.ImageURL != "":
		user.ProfileImage = patch.ImageURL
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Msg("profile updated")
	return updated, nil
}
