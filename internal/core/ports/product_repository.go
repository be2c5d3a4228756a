package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// ProductPage addresses an offset/limit window over the catalog in the
// store's natural order. Page is 1-based.
type ProductPage struct {
	Page  int
	Limit int
}

// ProductUpdate carries the mutable product fields. Nil pointers leave the
// stored field unchanged; Image follows the same rule with the empty string.
type ProductUpdate struct {
	Title       *string
	Price       *float64
	CategoryID  *string
	Discount    *float64
	Stock       *int
	Brand       *string
	Description *string
	Image       string
}

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	Insert(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// List returns one page of products in natural store order.
	List(ctx context.Context, page ProductPage) ([]*domain.Product, error)
	// SearchByTitle returns up to limit products whose title contains the
	// query case-insensitively. No pagination offset is applied.
	SearchByTitle(ctx context.Context, query string, limit int) ([]*domain.Product, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
