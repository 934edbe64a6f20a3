package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/sales/internal/domain"
	"github.com/vladislavdragonenkov/sales/internal/storage/memory"
)

func newOrder(id string, createdAt time.Time) domain.Order {
	return domain.Order{
		ID:         id,
		CustomerID: "customer-1",
		Items: []domain.OrderItem{
			{ID: "item-" + id, ProductID: "product-1", Quantity: 2, UnitPrice: decimal.NewFromInt(10), CreatedAt: createdAt},
		},
		Total:     decimal.NewFromInt(20),
		CreatedAt: createdAt,
	}
}

func TestOrderRepository_CreateGet(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())

	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.Get(order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.ID != order.ID {
		t.Fatalf("expected id %s, got %s", order.ID, stored.ID)
	}
	if len(stored.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(stored.Items))
	}
}

func TestOrderRepository_CreateDuplicate(t *testing.T) {
	repo := memory.NewOrderRepository()
	order := newOrder("order-1", time.Now().UTC())
	if err := repo.Create(order); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(order); !errors.Is(err, domain.ErrOrderExists) {
		t.Fatalf("expected ErrOrderExists, got %v", err)
	}
}

func TestOrderRepository_GetNotFound(t *testing.T) {
	repo := memory.NewOrderRepository()
	if _, err := repo.Get("missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderRepository_ListByCustomer(t *testing.T) {
	repo := memory.NewOrderRepository()
	base := time.Now().UTC()
	if err := repo.Create(newOrder("order-1", base.Add(-time.Minute))); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(newOrder("order-2", base)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := repo.ListByCustomer("customer-1", 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	// Свежие заказы идут первыми.
	if orders[0].ID != "order-2" {
		t.Fatalf("expected order-2 first, got %s", orders[0].ID)
	}

	limited, err := repo.ListByCustomer("customer-1", 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 order, got %d", len(limited))
	}
}
