package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/sales/internal/domain"
	"github.com/vladislavdragonenkov/sales/internal/storage/memory"
	"github.com/vladislavdragonenkov/sales/internal/storage/postgres"
)

// Dependencies содержит репозитории и, при postgres-драйвере, само хранилище.
type Dependencies struct {
	Customers domain.CustomerRepository
	Products  domain.ProductRepository
	Orders    domain.OrderRepository

	// Store не nil только для postgres: нужен для health check и закрытия.
	Store *postgres.Store
}

// NewMemoryDependencies собирает зависимости поверх in-memory хранилища.
func NewMemoryDependencies() *Dependencies {
	return &Dependencies{
		Customers: memory.NewCustomerRepository(),
		Products:  memory.NewProductRepository(),
		Orders:    memory.NewOrderRepository(),
	}
}

// NewPostgresDependencies собирает зависимости поверх открытого postgres-хранилища.
func NewPostgresDependencies(store *postgres.Store) *Dependencies {
	return &Dependencies{
		Customers: postgres.NewCustomerRepository(store),
		Products:  postgres.NewProductRepository(store),
		Orders:    postgres.NewOrderRepository(store),
		Store:     store,
	}
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close(logger *log.Entry) {
	if d == nil || d.Store == nil {
		return
	}
	if err := d.Store.Close(); err != nil && logger != nil {
		logger.WithError(err).Warn("не удалось закрыть postgres store")
	}
}
