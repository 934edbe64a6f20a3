package memory_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/sales/internal/domain"
	"github.com/vladislavdragonenkov/sales/internal/storage/memory"
)

func TestCustomerRepository_CreateAndFind(t *testing.T) {
	repo := memory.NewCustomerRepository()
	now := time.Now().UTC()
	customer := domain.Customer{ID: "c1", Name: "Alice", Email: "alice@example.com", CreatedAt: now, UpdatedAt: now}

	if err := repo.Create(customer); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stored, err := repo.FindByID("c1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if stored.Email != customer.Email {
		t.Fatalf("expected email %s, got %s", customer.Email, stored.Email)
	}
}

func TestCustomerRepository_NotFound(t *testing.T) {
	repo := memory.NewCustomerRepository()
	if _, err := repo.FindByID("nobody"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestCustomerRepository_DuplicateID(t *testing.T) {
	repo := memory.NewCustomerRepository()
	customer := domain.Customer{ID: "c1", Name: "Alice"}
	if err := repo.Create(customer); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Create(customer); !errors.Is(err, domain.ErrCustomerExists) {
		t.Fatalf("expected ErrCustomerExists, got %v", err)
	}
}
