package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for the category collaborator.
// The route path keeps the historical "/catagory" spelling; it is part of
// the external contract.
type CategoryHandler struct {
	service ports.CategoryService
	files   FileStore
}

func NewCategoryHandler(service ports.CategoryService, files FileStore) *CategoryHandler {
	return &CategoryHandler{service: service, files: files}
}

type categoryRequest struct {
	Name string `json:"name" form:"name"`
}

// List serves GET /catagory.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create serves POST /catagory (admin only) with an optional "image" file.
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	imagePath, err := h.saveUpload(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	category, err := h.service.CreateCategory(c.Request().Context(), req.Name, imagePath)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, category)
}

// Update serves PUT /catagory/:id (admin only).
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	imagePath, err := h.saveUpload(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	category, err := h.service.UpdateCategory(c.Request().Context(), c.Param("id"), req.Name, imagePath)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, category)
}

// Delete serves DELETE /catagory/:id (admin only).
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) saveUpload(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	path, err := h.files.Save(fh)
	if err != nil {
		return "", err
	}
	metrics.UploadsStoredTotal.WithLabelValues("category").Inc()
	return path, nil
}
