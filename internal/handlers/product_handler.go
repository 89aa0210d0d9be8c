package handlers

import (
	"errors"
	"log"

	"estoque/internal/services"

	"github.com/gofiber/fiber/v2"
)

// Success messages returned by the write handlers.
const (
	MessageInserted = "Inserido"
	MessageChanged  = "Alterado"
	MessageDeleted  = "Deletado"
)

// ProductHandler handles HTTP requests for products.
//
// Every handler answers 200 OK. Callers tell the outcome apart by the body:
// a "message" key on success, an "error" key on failure, or a field to
// violations map when validation fails.
type ProductHandler struct {
	service   *services.ProductService
	validator *ProductValidator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: NewProductValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/produto")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGet)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleList returns every product as a JSON array.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

// HandleGet returns the product with the path id, or JSON null when there
// is none.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	id := c.Params("id")
	product, found, err := h.service.GetProductByID(id)
	if err != nil {
		log.Printf("Error getting product %s: %v", id, err)
		return errorResponse(c, err)
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(product)
}

// HandleCreate validates the body and inserts a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	body := h.decodeBody(c)
	if verrs := h.validator.Validate(body); verrs != nil {
		return c.JSON(verrs)
	}

	if _, err := h.service.CreateProduct(Fields(body)); err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": MessageInserted})
}

// HandleUpdate validates the body and overwrites the product with the path id.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	body := h.decodeBody(c)
	if verrs := h.validator.Validate(body); verrs != nil {
		return c.JSON(verrs)
	}

	id := c.Params("id")
	if err := h.service.UpdateProduct(id, Fields(body)); err != nil {
		if !errors.Is(err, services.ErrProductNotFound) {
			log.Printf("Error updating product %s: %v", id, err)
		}
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": MessageChanged})
}

// HandleDelete deletes the product with the path id.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		if !errors.Is(err, services.ErrProductNotFound) {
			log.Printf("Error deleting product %s: %v", id, err)
		}
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": MessageDeleted})
}

// decodeBody parses the request body as a JSON object. Anything else,
// including an empty or malformed body, yields an empty object so that
// validation reports every field as blank.
func (h *ProductHandler) decodeBody(c *fiber.Ctx) map[string]interface{} {
	body := map[string]interface{}{}
	if len(c.Body()) == 0 {
		return body
	}
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil || body == nil {
		return map[string]interface{}{}
	}
	return body
}

// errorResponse writes {"error": msg} with status 200.
func errorResponse(c *fiber.Ctx, err error) error {
	return c.JSON(fiber.Map{"error": err.Error()})
}
