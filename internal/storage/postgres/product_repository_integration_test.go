package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/sales/internal/domain"
)

func TestProductRepository_PostgresCreateAndFind(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	older := sampleProduct("product-older", "молоко", "79.90", 10, now.Add(-time.Minute))
	newer := sampleProduct("product-newer", "молоко", "85.00", 3, now)

	if err := repo.Create(older); err != nil {
		t.Fatalf("create older product: %v", err)
	}
	if err := repo.Create(newer); err != nil {
		t.Fatalf("create newer product: %v", err)
	}
	if err := repo.Create(older); !errors.Is(err, domain.ErrProductExists) {
		t.Fatalf("expected ErrProductExists on duplicate id, got %v", err)
	}

	byName, err := repo.FindByName("молоко")
	if err != nil {
		t.Fatalf("find by name: %v", err)
	}
	if byName.ID != older.ID {
		t.Fatalf("expected earliest product by name, got %s", byName.ID)
	}
	if !byName.Price.Equal(older.Price) {
		t.Fatalf("unexpected price: %s", byName.Price)
	}

	if _, err := repo.FindByName("нет такого"); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	found, err := repo.FindAllByID([]string{older.ID, "ghost", newer.ID})
	if err != nil {
		t.Fatalf("find all by id: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 products with ghost id skipped, got %d", len(found))
	}
}

func TestProductRepository_PostgresUpdateQuantity(t *testing.T) {
	store := openPostgresStoreForIntegrationTest(t)
	repo := NewProductRepository(store)

	now := time.Now().UTC().Round(time.Microsecond)
	product := sampleProduct("product-qty", "хлеб", "45.00", 5, now)
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product: %v", err)
	}

	updated, err := repo.UpdateQuantity([]domain.QuantityUpdate{
		{ProductID: product.ID, Quantity: 3},
		{ProductID: "ghost", Quantity: 1},
	})
	if err != nil {
		t.Fatalf("update quantity: %v", err)
	}
	if len(updated) != 1 {
		t.Fatalf("expected single updated product, got %d", len(updated))
	}
	if updated[0].Quantity != 2 {
		t.Fatalf("unexpected quantity after decrement: %d", updated[0].Quantity)
	}

	// Пол на нуле не применяется: остаток уходит в минус.
	again, err := repo.UpdateQuantity([]domain.QuantityUpdate{{ProductID: product.ID, Quantity: 7}})
	if err != nil {
		t.Fatalf("update quantity below zero: %v", err)
	}
	if again[0].Quantity != -5 {
		t.Fatalf("expected negative quantity, got %d", again[0].Quantity)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !isUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected unique violation for code 23505")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "22001"}) {
		t.Fatal("unexpected unique violation for non-unique code")
	}
	if isUniqueViolation(errors.New("plain error")) {
		t.Fatal("plain error must not be unique violation")
	}
}

func sampleProduct(id, name, price string, quantity int, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:        id,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Quantity:  quantity,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}
