package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Lookups are
// email-keyed throughout: the email claim is the identity carried by every
// authenticated request.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update persists the given user record in full and returns the stored copy.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
