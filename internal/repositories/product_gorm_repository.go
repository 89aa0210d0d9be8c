package repositories

import (
	"fmt"

	"estoque/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products in insertion (id) order.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	products := []models.Product{}
	if err := r.db.Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves the first product matching id.
func (r *GORMProductRepository) FindByID(id string) (models.Product, bool, error) {
	var products []models.Product
	// Find with Limit instead of First: a missing row is not an error here.
	if err := r.db.Where("id = ?", id).Limit(1).Find(&products).Error; err != nil {
		return models.Product{}, false, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	if len(products) == 0 {
		return models.Product{}, false, nil
	}
	return products[0], true, nil
}

// Create inserts a new product; the database assigns its ID.
func (r *GORMProductRepository) Create(product *models.Product) error {
	product.ID = 0
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update overwrites the writable columns of the rows matching id.
func (r *GORMProductRepository) Update(id string, fields models.ProductFields) error {
	// Updates with a map writes zero values too, unlike Updates with a struct.
	res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields.Columns())
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	return nil
}

// Delete deletes the rows matching id.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	return nil
}
