package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/sales/internal/domain"
)

// Service управляет каталогом товаров и покупателями.
type Service interface {
	CreateProduct(name string, price decimal.Decimal, quantity int) (domain.Product, error)
	FindProductByName(name string) (domain.Product, error)
	CreateCustomer(name, email string) (domain.Customer, error)
}

type service struct {
	products  domain.ProductRepository
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService создаёт сервис каталога.
func NewService(
	products domain.ProductRepository,
	customers domain.CustomerRepository,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.New().WithField("component", "catalog")
	}
	return &service{
		products:  products,
		customers: customers,
		logger:    logger,
	}
}

// CreateProduct добавляет товар в каталог.
// Повторное имя отклоняется до записи.
func (s *service) CreateProduct(name string, price decimal.Decimal, quantity int) (domain.Product, error) {
	now := time.Now().UTC()
	product := domain.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if errs := product.Validate(); len(errs) > 0 {
		return domain.Product{}, errors.Join(errs...)
	}

	if _, err := s.products.FindByName(name); err == nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", name, domain.ErrProductExists)
	} else if !errors.Is(err, domain.ErrProductNotFound) {
		return domain.Product{}, fmt.Errorf("check product name %q: %w", name, err)
	}

	if err := s.products.Create(product); err != nil {
		s.logger.WithError(err).WithField("product_name", name).Error("не удалось сохранить товар")
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	return product, nil
}

func (s *service) FindProductByName(name string) (domain.Product, error) {
	return s.products.FindByName(name)
}

// CreateCustomer регистрирует покупателя.
func (s *service) CreateCustomer(name, email string) (domain.Customer, error) {
	if name == "" {
		return domain.Customer{}, fmt.Errorf("customer name is required: %w", domain.ErrCustomerRequired)
	}
	if email == "" {
		return domain.Customer{}, fmt.Errorf("customer email is required: %w", domain.ErrCustomerRequired)
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.customers.Create(customer); err != nil {
		s.logger.WithError(err).WithField("customer_email", email).Error("не удалось сохранить покупателя")
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

var _ Service = (*service)(nil)
