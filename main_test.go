package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estoque/internal/config"
	"estoque/internal/repositories"
	"estoque/internal/services"
	"estoque/pkg/rabbitmq"
)

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishProductEvent(ev rabbitmq.Event) error {
	args := m.Called(ev)
	return args.Error(0)
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestHealthCheck(t *testing.T) {
	app := newApp(repositories.NewMockProductRepository(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"status":"healthy"`)
}

func TestProductLifecyclePublishesEvents(t *testing.T) {
	publisher := new(MockPublisher)
	for _, eventType := range []string{services.EventProductCreated, services.EventProductUpdated, services.EventProductDeleted} {
		eventType := eventType
		publisher.On("PublishProductEvent", mock.MatchedBy(func(ev rabbitmq.Event) bool {
			return ev.Type == eventType && ev.ProductID == "1"
		})).Return(nil).Once()
	}
	app := newApp(repositories.NewMockProductRepository(), publisher)

	steps := []struct {
		method, path, body, want string
	}{
		{http.MethodPost, "/produto", `{"descricao":"Caneta","quantidade":10,"valor":2.5}`, `{"message":"Inserido"}`},
		{http.MethodGet, "/produto", "", `[{"id":1,"descricao":"Caneta","quantidade":10,"valor":2.5}]`},
		{http.MethodPut, "/produto/1", `{"descricao":"Caneta","quantidade":9,"valor":2.5}`, `{"message":"Alterado"}`},
		{http.MethodGet, "/produto/1", "", `{"id":1,"descricao":"Caneta","quantidade":9,"valor":2.5}`},
		{http.MethodDelete, "/produto/1", "", `{"message":"Deletado"}`},
		{http.MethodDelete, "/produto/1", "", `{"error":"Produto não encontrado"}`},
		{http.MethodGet, "/produto", "", `[]`},
	}
	for _, s := range steps {
		req := httptest.NewRequest(s.method, s.path, strings.NewReader(s.body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.JSONEq(t, s.want, string(raw), s.method+" "+s.path)
	}

	publisher.AssertExpectations(t)
}

func TestNewProductRepository(t *testing.T) {
	repo, err := newProductRepository(config.Config{DBDriver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &repositories.MockProductRepository{}, repo)

	repo, err = newProductRepository(config.Config{DBDriver: config.DriverSQLite, DatabaseDSN: "file:" + t.Name() + "?mode=memory&cache=shared"})
	require.NoError(t, err)
	assert.IsType(t, &repositories.GORMProductRepository{}, repo)
}

func TestRecoverKeepsPanicsOffTheTransport(t *testing.T) {
	app := newApp(repositories.NewMockProductRepository(), nil)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
