package handler

import "github.com/storekit/commerce-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Mobile   string `json:"mobile"   validate:"required"`
}

type registerResponse struct {
	UserID string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// updateProfileRequest binds from JSON or multipart form fields. All fields
// are optional; zero values leave the stored field unchanged.
type updateProfileRequest struct {
	Name     string `json:"name"    form:"name"`
	Mobile   string `json:"mobile"  form:"mobile"`
	Address  string `json:"address" form:"address"`
	Age      int    `json:"age"     form:"age"     validate:"omitempty,gte=0"`
	ImageURL string `json:"profile" form:"profile_url"`
}
