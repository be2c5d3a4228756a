package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storekit/commerce-api/internal/api/metrics"
	"github.com/storekit/commerce-api/internal/core/domain"
	"github.com/storekit/commerce-api/internal/core/ports"
)

// FileStore persists an uploaded multipart file and returns its stored path.
type FileStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

type AuthHandler struct {
	authService ports.AuthService
	files       FileStore
}

func NewAuthHandler(authService ports.AuthService, files FileStore) *AuthHandler {
	return &AuthHandler{authService: authService, files: files}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, registerResponse{UserID: userID})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

// GetProfile returns the caller's stored record.
//
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user [get]
func (h *AuthHandler) GetProfile(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetProfile(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: user})
}

// UpdateProfile patches the caller's profile. Accepts JSON or a multipart
// form with an optional "profile" image file; the uploaded file wins over a
// profile URL supplied in the body.
//
// @Summary      Update own profile
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        profile  formData  file  false  "Profile image"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	email, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	uploaded, err := h.saveUpload(c, "profile")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid profile image upload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), email, ports.ProfilePatch{
		Name:          req.Name,
		Mobile:        req.Mobile,
		Address:       req.Address,
		Age:           req.Age,
		ImageURL:      req.ImageURL,
		UploadedImage: uploaded,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: user})
}

// saveUpload stores the named multipart file if one was sent. A request
// without that part (or a non-multipart request) is not an error.
func (h *AuthHandler) saveUpload(c echo.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	path, err := h.files.Save(fh)
	if err != nil {
		return "", err
	}
	metrics.UploadsStoredTotal.WithLabelValues(field).Inc()
	return path, nil
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
