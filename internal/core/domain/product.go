package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidInput = errors.New("invalid input")

// Product is a catalog item. Category is resolved by the service layer
// before the product leaves the core.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Price       float64   `json:"price" bson:"price"`
	Image       string    `json:"image" bson:"image"`
	CategoryID  string    `json:"-" bson:"category_id"`
	Category    *Category `json:"category,omitempty" bson:"-"`
	Discount    float64   `json:"discount" bson:"discount"`
	Stock       int       `json:"stock" bson:"stock"`
	Brand       string    `json:"brand" bson:"brand"`
	Description string    `json:"description" bson:"description"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
