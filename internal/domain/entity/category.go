package entity

import "time"

// Category representa una categoría de productos del almacén.
type Category struct {
	ID          string
	Name        string // único
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
