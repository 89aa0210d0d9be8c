package services

import (
	"errors"
	"log"
	"strconv"
	"time"

	"estoque/internal/models"
	"estoque/internal/repositories"
	"estoque/pkg/rabbitmq"
)

// ErrProductNotFound is returned by Update and Delete when no product has
// the requested ID. Its message is shown to API clients as is.
var ErrProductNotFound = errors.New("Produto não encontrado")

// Product change event types.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes product change events. *rabbitmq.Client
// satisfies it.
type EventPublisher interface {
	PublishProductEvent(ev rabbitmq.Event) error
}

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewProductService creates a new ProductService. publisher may be nil, in
// which case no events are published.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product. The boolean is false when no
// product matches; that is not an error.
func (s *ProductService) GetProductByID(id string) (models.Product, bool, error) {
	return s.repo.FindByID(id)
}

// CreateProduct inserts a product with the given fields and returns it with
// its storage-assigned ID.
func (s *ProductService) CreateProduct(fields models.ProductFields) (models.Product, error) {
	product := models.Product{
		Descricao:  fields.Descricao,
		Quantidade: fields.Quantidade,
		Valor:      fields.Valor,
	}
	if err := s.repo.Create(&product); err != nil {
		return models.Product{}, err
	}
	s.publish(EventProductCreated, product.ID, product)
	return product, nil
}

// UpdateProduct overwrites all writable fields of an existing product.
//
// The existence check and the update are separate storage calls; a product
// deleted in between is updated as a no-op and still reported as changed.
func (s *ProductService) UpdateProduct(id string, fields models.ProductFields) error {
	existing, found, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	if err := s.repo.Update(id, fields); err != nil {
		return err
	}
	s.publish(EventProductUpdated, existing.ID, fields)
	return nil
}

// DeleteProduct deletes an existing product. Same check-then-act caveat as
// UpdateProduct.
func (s *ProductService) DeleteProduct(id string) error {
	existing, found, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrProductNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publish(EventProductDeleted, existing.ID, nil)
	return nil
}

// publish is best effort: a broker failure never fails the request.
func (s *ProductService) publish(eventType string, id uint, payload interface{}) {
	if s.publisher == nil {
		return
	}
	ev := rabbitmq.Event{
		Type:       eventType,
		ProductID:  strconv.FormatUint(uint64(id), 10),
		Payload:    payload,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishProductEvent(ev); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, id, err)
	}
}
