package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.CatalogService
	files   FileStore
}

func NewProductHandler(service ports.CatalogService, files FileStore) *ProductHandler {
	return &ProductHandler{service: service, files: files}
}

// List serves GET /product. A non-empty "search" switches to title search;
// otherwise the catalog is paged with "page" and "limit".
//
// @Summary      List or search products
// @Tags         products
// @Produce      json
// @Param        search  query     string  false  "Title substring, case-insensitive"
// @Param        page    query     int     false  "Page number (ignored in search mode)"
// @Param        limit   query     int     false  "Page size, default 10"
// @Success      200     {object}  listProductsResponse
// @Failure      500     {object}  errorResponse
// @Router       /product [get]
func (h *ProductHandler) List(c echo.Context) error {
	search := c.QueryParam("search")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	mode := "page"
	if search != "" {
		mode = "search"
	}
	metrics.CatalogListTotal.WithLabelValues(mode).Inc()

	result, err := h.service.ListProducts(c.Request().Context(), ports.ListProductsInput{
		Search: search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListProductsResponse(result))
}

// Get serves GET /product/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create serves POST /product (admin only). Accepts JSON or a multipart form
// with an optional "image" file.
//
// @Summary      Create a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  false  "Product image"
// @Success      201  {object}  domain.Product
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	imagePath, err := h.saveUpload(c, "image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	product, err := h.service.CreateProduct(c.Request().Context(), toCreateProductInput(req, imagePath, role))
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update serves PUT /product/:id (admin only). An uploaded "image" file
// overrides an image URL in the body, which overrides the stored image.
//
// @Summary      Update a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Product id"
// @Param        image  formData  file    false  "Product image"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uploaded, err := h.saveUpload(c, "image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image upload")
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), c.Param("id"), toUpdateProductInput(req, uploaded, role))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete serves DELETE /product/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      204  "deleted"
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProduct(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) saveUpload(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	path, err := h.files.Save(fh)
	if err != nil {
		return "", err
	}
	metrics.UploadsStoredTotal.WithLabelValues("product").Inc()
	return path, nil
}
