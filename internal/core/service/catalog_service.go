package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// CatalogService implements product listing, lookup and admin-gated mutation.
type CatalogService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, categories ports.CategoryRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, categories: categories, log: log}
}

// ListProducts serves the two mutually exclusive listing modes.
//
// With a non-empty search it matches titles case-insensitively, applies only
// the limit (no offset), reports the matched titles as suggestions, and
// always reports totalPages as 1, a quirk of the historical contract that
// clients depend on.
//
// Without a search it returns an offset/limit window in natural store order
// with a real page count.
func (s *CatalogService) ListProducts(ctx context.Context, in ports.ListProductsInput) (*ports.ListProductsResult, error) {
	page := in.Page
	if page <= 0 {
		page = defaultPage
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	if in.Search != "" {
		matches, err := s.products.SearchByTitle(ctx, in.Search, limit)
		if err != nil {
			return nil, err
		}
		if err := s.resolveCategories(ctx, matches); err != nil {
			return nil, err
		}

		suggestions := make([]string, len(matches))
		for i, p := range matches {
			suggestions[i] = p.Title
		}

		return &ports.ListProductsResult{
			Total:       int64(len(matches)),
			Page:        page,
			Limit:       limit,
			TotalPages:  1,
			Suggestions: suggestions,
			Data:        matches,
		}, nil
	}

	total, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.products.List(ctx, ports.ProductPage{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}
	if err := s.resolveCategories(ctx, items); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListProductsResult{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Data:       items,
	}, nil
}

// GetProduct returns a single product with its category resolved.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveCategories(ctx, []*domain.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProduct persists a new catalog item. Only admins may create;
// title, price and category are required and the category must exist.
func (s *CatalogService) CreateProduct(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	if in.CallerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if in.Title == "" || in.Price == 0 || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}

	category, err := s.categories.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Title:       in.Title,
		Price:       in.Price,
		Image:       in.ImagePath,
		CategoryID:  in.CategoryID,
		Discount:    in.Discount,
		Stock:       in.Stock,
		Brand:       in.Brand,
		Description: in.Description,
	}

	created, err := s.products.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	created.Category = category

	s.log.Info().Str("product_id", created.ID).Str("title", created.Title).Msg("product created")
	return created, nil
}

// UpdateProduct applies the supplied fields to an existing product. Image
// precedence: uploaded file, then image URL from the body, then unchanged.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, in ports.UpdateProductInput) (*domain.Product, error) {
	if in.CallerRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
	}

	image := ""
	switch {
	case in.UploadedImage != "":
		image = in.UploadedImage
	case in.ImageURL != "":
		image = in.ImageURL
	}

	updated, err := s.products.Update(ctx, id, ports.ProductUpdate{
		Title:       in.Title,
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		Discount:    in.Discount,
		Stock:       in.Stock,
		Brand:       in.Brand,
		Description: in.Description,
		Image:       image,
	})
	if err != nil {
		return nil, err
	}
	if err := s.resolveCategories(ctx, []*domain.Product{updated}); err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Msg("product updated")
	return updated, nil
}

// DeleteProduct removes a product. Only admins may delete.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string, callerRole string) error {
	if callerRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// resolveCategories attaches the category record to each product in one
// batched lookup.
func (s *CatalogService) resolveCategories(ctx context.Context, products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.CategoryID]; ok || p.CategoryID == "" {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}

	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, p := range products {
		p.Category = categories[p.CategoryID]
	}
	return nil
}
