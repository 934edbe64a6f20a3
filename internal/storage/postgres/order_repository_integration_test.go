package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/sales/internal/domain"
)

func TestOrderRepository_PostgresCreateGetAndList(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	seedOrderFixtures(t, store, now)

	order1 := sampleStoredOrder("order-1", "customer-1", now.Add(-2*time.Minute))
	order2 := sampleStoredOrder("order-2", "customer-1", now.Add(-time.Minute))

	if err := repo.Create(order1); err != nil {
		t.Fatalf("create order1: %v", err)
	}
	if err := repo.Create(order2); err != nil {
		t.Fatalf("create order2: %v", err)
	}

	got, err := repo.Get(order1.ID)
	if err != nil {
		t.Fatalf("get order1: %v", err)
	}
	if got.ID != order1.ID || got.CustomerID != order1.CustomerID {
		t.Fatalf("unexpected order payload: %+v", got)
	}
	if !got.Total.Equal(order1.Total) {
		t.Fatalf("unexpected total: %s", got.Total)
	}
	if len(got.Items) != len(order1.Items) {
		t.Fatalf("unexpected items count: got=%d want=%d", len(got.Items), len(order1.Items))
	}
	if !got.Items[0].UnitPrice.Equal(order1.Items[0].UnitPrice) {
		t.Fatalf("unexpected unit price: %s", got.Items[0].UnitPrice)
	}

	listed, err := repo.ListByCustomer("customer-1", 1)
	if err != nil {
		t.Fatalf("list by customer with limit: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != order2.ID {
		t.Fatalf("unexpected list result with limit: %+v", listed)
	}

	all, err := repo.ListByCustomer("customer-1", 0)
	if err != nil {
		t.Fatalf("list by customer without limit: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(all))
	}
}

func TestOrderRepository_PostgresErrors(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewOrderRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	seedOrderFixtures(t, store, now)

	if _, err := repo.Get("missing-order"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}

	base := sampleStoredOrder("order-errors", "customer-1", now)
	if err := repo.Create(base); err != nil {
		t.Fatalf("create base order: %v", err)
	}
	if err := repo.Create(base); !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists on duplicate create, got %v", err)
	}
}

func seedOrderFixtures(t *testing.T, store *Store, now time.Time) {
	t.Helper()

	customers := NewCustomerRepository(store)
	products := NewProductRepository(store)

	customer := domain.Customer{
		ID:        "customer-1",
		Name:      "Анна Смирнова",
		Email:     "anna@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := customers.Create(customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	product := sampleProduct("product-1", "кофе", "150.00", 20, now)
	if err := products.Create(product); err != nil {
		t.Fatalf("seed product: %v", err)
	}
}

func sampleStoredOrder(id, customerID string, createdAt time.Time) domain.Order {
	price := decimal.RequireFromString("150.00")
	items := []domain.OrderItem{
		{
			ID:        id + "-item-1",
			ProductID: "product-1",
			Quantity:  2,
			UnitPrice: price,
			CreatedAt: createdAt,
		},
	}

	return domain.Order{
		ID:         id,
		CustomerID: customerID,
		Items:      items,
		Total:      price.Mul(decimal.NewFromInt(2)),
		CreatedAt:  createdAt,
	}
}
