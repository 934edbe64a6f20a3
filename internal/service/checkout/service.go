package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/sales/internal/domain"
	"github.com/vladislavdragonenkov/sales/internal/metrics"
)

// ProductInput описывает одну строку запроса на оформление заказа.
type ProductInput struct {
	ID       string
	Quantity int
}

// CreateOrderInput содержит параметры оформления заказа.
type CreateOrderInput struct {
	CustomerID string
	Products   []ProductInput
}

// Service описывает оформление заказа поверх каталога и репозиториев.
type Service interface {
	CreateOrder(input CreateOrderInput) (domain.Order, error)
}

// service реализует последовательность оформления:
// покупатель → выборка товаров → проверка остатков → заказ → списание.
type service struct {
	customers domain.CustomerRepository
	products  domain.ProductRepository
	orders    domain.OrderRepository
	logger    *log.Entry
	metrics   *metrics.CheckoutMetrics
}

const (
	rejectReasonCustomerNotFound = "customer_not_found"
	rejectReasonInvalidProducts  = "invalid_products"
	rejectReasonOutOfStock       = "out_of_stock"
	rejectReasonInternal         = "internal"
)

// NewService создаёт рабочий экземпляр сервиса оформления заказов.
func NewService(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &service{
		customers: customers,
		products:  products,
		orders:    orders,
		logger:    logger,
		metrics:   metrics.NewCheckoutMetrics(),
	}
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(
	customers domain.CustomerRepository,
	products domain.ProductRepository,
	orders domain.OrderRepository,
	logger *log.Entry,
) Service {
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &service{
		customers: customers,
		products:  products,
		orders:    orders,
		logger:    logger,
		metrics:   nil,
	}
}

// CreateOrder проводит запрос через все проверки и сохраняет заказ.
// Цена каждой позиции фиксируется из каталога на момент проверки.
func (s *service) CreateOrder(input CreateOrderInput) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	if err := validateInput(input); err != nil {
		s.reject(rejectReasonInvalidProducts)
		return domain.Order{}, err
	}

	customer, err := s.customers.FindByID(input.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			s.reject(rejectReasonCustomerNotFound)
			return domain.Order{}, err
		}
		s.reject(rejectReasonInternal)
		return domain.Order{}, fmt.Errorf("find customer %s: %w", input.CustomerID, err)
	}

	ids := make([]string, 0, len(input.Products))
	requested := make(map[string]ProductInput, len(input.Products))
	for _, line := range input.Products {
		ids = append(ids, line.ID)
		requested[line.ID] = line
	}

	fetched, err := s.products.FindAllByID(ids)
	if err != nil {
		s.reject(rejectReasonInternal)
		return domain.Order{}, fmt.Errorf("fetch products: %w", err)
	}

	// Неизвестные id молча выпадают из выборки, расхождение ловим по количеству.
	if len(fetched) != len(ids) {
		s.reject(rejectReasonInvalidProducts)
		return domain.Order{}, fmt.Errorf("requested %d products, found %d: %w",
			len(ids), len(fetched), domain.ErrInvalidProducts)
	}

	now := time.Now().UTC()
	items := make([]domain.OrderItem, 0, len(fetched))
	total := decimal.Zero
	for _, product := range fetched {
		line, ok := requested[product.ID]
		if !ok {
			// Защитная ветка: выборка вернула товар вне запроса.
			s.reject(rejectReasonInternal)
			return domain.Order{}, fmt.Errorf("fetched product %s was not requested: %w",
				product.ID, domain.ErrProductNotFound)
		}
		if line.Quantity > product.Quantity {
			s.reject(rejectReasonOutOfStock)
			return domain.Order{}, fmt.Errorf("product %s: requested %d, in stock %d: %w",
				product.ID, line.Quantity, product.Quantity, domain.ErrProductOutOfStock)
		}

		items = append(items, domain.OrderItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
			CreatedAt: now,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Items:      items,
		Total:      total,
		CreatedAt:  now,
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		s.reject(rejectReasonInternal)
		return domain.Order{}, fmt.Errorf("order invariants violated: %w", errors.Join(errs...))
	}

	if err := s.orders.Create(order); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).Error("не удалось сохранить заказ")
		s.reject(rejectReasonInternal)
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated()
	}

	s.decrementStock(order)

	return order, nil
}

// decrementStock списывает остатки после фиксации заказа.
// Сбой списания не отменяет уже сохранённый заказ: расхождение
// остаётся в каталоге и попадает в лог и метрики.
func (s *service) decrementStock(order domain.Order) {
	updates := make([]domain.QuantityUpdate, 0, len(order.Items))
	for _, item := range order.Items {
		updates = append(updates, domain.QuantityUpdate{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	if _, err := s.products.UpdateQuantity(updates); err != nil {
		s.logger.WithError(err).WithField("order_id", order.ID).
			Error("не удалось списать остатки после создания заказа")
		if s.metrics != nil {
			s.metrics.RecordStockDecrementFailure()
		}
		return
	}

	if s.metrics != nil {
		s.metrics.RecordStockDecremented()
	}
}

func (s *service) reject(reason string) {
	if s.metrics != nil {
		s.metrics.RecordOrderRejected(reason)
	}
}

// validateInput проверяет форму запроса до обращения к хранилищу.
// Повторяющиеся id товаров отклоняются сразу, чтобы сверка количества
// выбранных товаров с запросом оставалась корректной.
func validateInput(input CreateOrderInput) error {
	if input.CustomerID == "" {
		return domain.ErrCustomerRequired
	}
	if len(input.Products) == 0 {
		return fmt.Errorf("order must contain at least one product: %w", domain.ErrInvalidProducts)
	}

	seen := make(map[string]struct{}, len(input.Products))
	for idx, line := range input.Products {
		if line.ID == "" {
			return fmt.Errorf("product[%d] id is required: %w", idx, domain.ErrInvalidProducts)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("product[%d] quantity must be > 0: %w", idx, domain.ErrInvalidProducts)
		}
		if _, ok := seen[line.ID]; ok {
			return fmt.Errorf("duplicate product id %s: %w", line.ID, domain.ErrInvalidProducts)
		}
		seen[line.ID] = struct{}{}
	}

	return nil
}

var _ Service = (*service)(nil)
