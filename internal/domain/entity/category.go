package entity

import "time"

// Category is a product grouping referenced by Product.CategoryID.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
