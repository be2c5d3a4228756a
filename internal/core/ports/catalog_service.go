package ports

import (
	"context"

	"github.com/storekit/commerce-api/internal/core/domain"
)

// ListProductsInput carries the query parameters of the list endpoint.
// A non-empty Search switches the service into search mode.
type ListProductsInput struct {
	Search string
	Page   int
	Limit  int
}

// ListProductsResult is returned by ListProducts. In search mode Suggestions
// holds the matched titles and TotalPages is always 1.
type ListProductsResult struct {
	Total       int64
	Page        int
	Limit       int
	TotalPages  int
	Suggestions []string
	Data        []*domain.Product
}

// CreateProductInput carries all data needed to create a catalog item.
// ImagePath is the stored path of an uploaded file, empty when none was sent.
type CreateProductInput struct {
	Title       string
	Price       float64
	CategoryID  string
	Discount    float64
	Stock       int
	Brand       string
	Description string
	ImagePath   string
	CallerRole  string
}

// UpdateProductInput mirrors CreateProductInput with optional fields. An
// uploaded image overrides ImageURL, which overrides leaving the stored
// image unchanged.
type UpdateProductInput struct {
	Title         *string
	Price         *float64
	CategoryID    *string
	Discount      *float64
	Stock         *int
	Brand         *string
	Description   *string
	ImageURL      string
	UploadedImage string
	CallerRole    string
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	ListProducts(ctx context.Context, in ListProductsInput) (*ListProductsResult, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string, callerRole string) error
}
