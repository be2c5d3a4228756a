package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	// FindByIDs returns the categories for the given id set, keyed by id.
	// Missing ids are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Category, error)
	Insert(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, name, image string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
