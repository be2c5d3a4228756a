package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Mobile   string
}

// ProfilePatch carries optional profile fields. Zero values leave the stored
// field unchanged. UploadedImage is the stored path of a multipart upload and
// takes precedence over ImageURL when both are supplied.
type ProfilePatch struct {
	Name          string
	Mobile        string
	Address       string
	Age           int
	ImageURL      string
	UploadedImage string
}

type AuthService interface {
	// Register creates a new user with role "user" and returns its id.
	Register(ctx context.Context, in RegisterInput) (string, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, patch ProfilePatch) (*domain.User, error)
}
