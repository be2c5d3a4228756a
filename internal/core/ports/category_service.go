package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// CategoryService defines use-case operations for product categories.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, name, imagePath string) (*domain.Category, error)
	// UpdateCategory applies the non-empty fields. An uploaded image path in
	// imagePath overrides the stored image.
	UpdateCategory(ctx context.Context, id, name, imagePath string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
