package handler

import (
	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProductInput(req createProductRequest, imagePath, callerRole string) ports.CreateProductInput {
	return ports.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		CategoryID:  req.Category,
		Discount:    req.Discount,
		Stock:       req.Stock,
		Brand:       req.Brand,
		Description: req.Description,
		ImagePath:   imagePath,
		CallerRole:  callerRole,
	}
}

func toUpdateProductInput(req updateProductRequest, uploadedImage, callerRole string) ports.UpdateProductInput {
	return ports.UpdateProductInput{
		Title:         req.Title,
		Price:         req.Price,
		CategoryID:    req.Category,
		Discount:      req.Discount,
		Stock:         req.Stock,
		Brand:         req.Brand,
		Description:   req.Description,
		ImageURL:      req.Image,
		UploadedImage: uploadedImage,
		CallerRole:    callerRole,
	}
}

// --- Service result → HTTP response ---

func toListProductsResponse(r *ports.ListProductsResult) listProductsResponse {
	resp := listProductsResponse{
		Total:      r.Total,
		Page:       r.Page,
		Limit:      r.Limit,
		TotalPages: r.TotalPages,
		Data:       r.Data,
	}
	// A nil result slice must still serialize as [].
	if resp.Data == nil {
		resp.Data = []*domain.Product{}
	}
	// Non-nil suggestions means search mode: the key is emitted even with
	// zero matches.
	if r.Suggestions != nil {
		resp.Suggestions = &r.Suggestions
	}
	return resp
}
