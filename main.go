package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/viper"

	"estoque/internal/config"
	"estoque/internal/database"
	"estoque/internal/handlers"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Repository ---
	productRepo, err := newProductRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize product repository: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		publisher = mqClient

		if cfg.RabbitMQConsume {
			err := mqClient.ConsumeProductEvents(func(ev rabbitmq.Event) error {
				log.Printf("Product event %s for product %s at %s", ev.Type, ev.ProductID, ev.OccurredAt.Format(time.RFC3339))
				return nil
			})
			if err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}
	} else {
		log.Println("RABBITMQ_URL not set. Product events will not be published.")
	}

	app := newApp(productRepo, publisher, logger.New())

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// newProductRepository picks the storage backend named by DB_DRIVER.
func newProductRepository(cfg config.Config) (repositories.ProductRepository, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repositories.NewMockProductRepository(), nil
	}
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	return repositories.NewGORMProductRepository(db), nil
}

// newApp wires the product service and handler into a Fiber app. The extra
// middleware runs after recover and before the routes.
func newApp(productRepo repositories.ProductRepository, publisher services.EventPublisher, middleware ...fiber.Handler) *fiber.App {
	productService := services.NewProductService(productRepo, publisher)
	productHandler := handlers.NewProductHandler(productService)

	app := fiber.New()
	app.Use(recover.New())
	for _, m := range middleware {
		app.Use(m)
	}

	productHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
