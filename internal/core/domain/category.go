package domain

import "errors"

var ErrCategoryNotFound = errors.New("category not found")

// Category groups products under a display name and optional image.
type Category struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Image string `json:"image" bson:"image"`
}
