package repositories

import (
	"sort"
	"strconv"
	"sync"

	"estoque/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// GetAll returns all products ordered by ID.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	sort.Slice(productList, func(i, j int) bool { return productList[i].ID < productList[j].ID })
	return productList, nil
}

// FindByID returns the product with the given ID. An id that does not parse
// as an unsigned integer matches nothing.
func (r *MockProductRepository) FindByID(id string) (models.Product, bool, error) {
	key, ok := parseID(id)
	if !ok {
		return models.Product{}, false, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[key]
	return product, ok, nil
}

// Create adds a new product and assigns it the next ID.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = r.nextID
	r.nextID++
	r.products[product.ID] = *product
	return nil
}

// Update overwrites the writable fields of the product with the given ID.
// Updating a missing ID affects nothing, like an UPDATE ... WHERE.
func (r *MockProductRepository) Update(id string, fields models.ProductFields) error {
	key, ok := parseID(id)
	if !ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[key]
	if !ok {
		return nil
	}
	product.Descricao = fields.Descricao
	product.Quantidade = fields.Quantidade
	product.Valor = fields.Valor
	r.products[key] = product
	return nil
}

// Delete removes the product with the given ID, if any.
func (r *MockProductRepository) Delete(id string) error {
	key, ok := parseID(id)
	if !ok {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, key)
	return nil
}

func parseID(id string) (uint, bool) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
