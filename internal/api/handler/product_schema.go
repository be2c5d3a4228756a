package handler

import "github.com/storekit/commerce-api/internal/core/domain"

// --- Request / Response types ---

// createProductRequest binds from JSON or multipart form fields; an optional
// "image" file part carries the product image.
type createProductRequest struct {
	Title       string  `json:"title"       form:"title"       validate:"required"`
	Price       float64 `json:"price"       form:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    form:"category"    validate:"required"`
	Discount    float64 `json:"discount"    form:"discount"    validate:"omitempty,gte=0"`
	Stock       int     `json:"stock"       form:"stock"       validate:"omitempty,gte=0"`
	Brand       string  `json:"brand"       form:"brand"`
	Description string  `json:"description" form:"description"`
}

// updateProductRequest uses pointers so an absent field can be told apart
// from an explicit zero. Image is an image URL; an uploaded file overrides it.
type updateProductRequest struct {
	Title       *string  `json:"title"       form:"title"`
	Price       *float64 `json:"price"       form:"price"       validate:"omitempty,gt=0"`
	Category    *string  `json:"category"    form:"category"`
	Discount    *float64 `json:"discount"    form:"discount"    validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock"       form:"stock"       validate:"omitempty,gte=0"`
	Brand       *string  `json:"brand"       form:"brand"`
	Description *string  `json:"description" form:"description"`
	Image       string   `json:"image"       form:"image_url"`
}

// listProductsResponse preserves the historical list contract: in search mode
// suggestions holds the matched titles (present even when empty) and
// totalPages is always 1; outside search mode the key is absent. data is
// always an array, never null.
type listProductsResponse struct {
	Total       int64             `json:"total"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	TotalPages  int               `json:"totalPages"`
	Suggestions *[]string         `json:"suggestions,omitempty"`
	Data        []*domain.Product `json:"data"`
}
