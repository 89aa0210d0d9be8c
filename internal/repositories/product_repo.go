package repositories

import (
	"estoque/internal/models"
)

// ProductRepository defines the interface for product data access.
//
// FindByID reports a missing row through its boolean result rather than an
// error, so callers can tell "no such product" apart from a storage failure.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	FindByID(id string) (models.Product, bool, error)
	Create(product *models.Product) error
	Update(id string, fields models.ProductFields) error
	Delete(id string) error
}
