package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/sales/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт PostgreSQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

func (r *productRepository) Create(product domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price, quantity, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, product.ID, product.Name, product.Price, product.Quantity, product.CreatedAt, product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// FindByName возвращает первый по времени создания товар с таким именем.
func (r *productRepository) FindByName(name string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var product domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, quantity, created_at, updated_at
		FROM products
		WHERE name = $1
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, name).Scan(
		&product.ID, &product.Name, &product.Price, &product.Quantity,
		&product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("select product by name: %w", err)
	}
	return product, nil
}

// FindAllByID выбирает товары по одному, молча пропуская неизвестные id.
// Частичная выборка не считается ошибкой: вызывающая сторона сверяет количество.
func (r *productRepository) FindAllByID(ids []string) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		var product domain.Product
		err := r.db.QueryRowContext(ctx, `
			SELECT id, name, price, quantity, created_at, updated_at
			FROM products
			WHERE id = $1
		`, id).Scan(
			&product.ID, &product.Name, &product.Price, &product.Quantity,
			&product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return nil, fmt.Errorf("select product %s: %w", id, err)
		}
		result = append(result, product)
	}
	return result, nil
}

// UpdateQuantity применяет каждое списание отдельным UPDATE без общей транзакции:
// сбой в середине оставляет уже применённые списания зафиксированными.
// Остаток может уйти в минус, пол на нуле не применяется.
func (r *productRepository) UpdateQuantity(updates []domain.QuantityUpdate) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	updated := make([]domain.Product, 0, len(updates))
	for _, update := range updates {
		var product domain.Product
		err := r.db.QueryRowContext(ctx, `
			UPDATE products
			SET quantity = quantity - $2,
			    updated_at = NOW()
			WHERE id = $1
			RETURNING id, name, price, quantity, created_at, updated_at
		`, update.ProductID, update.Quantity).Scan(
			&product.ID, &product.Name, &product.Price, &product.Quantity,
			&product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Неизвестный id пропускаем без ошибки.
				continue
			}
			return updated, fmt.Errorf("update product quantity %s: %w", update.ProductID, err)
		}
		updated = append(updated, product)
	}
	return updated, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

var _ domain.ProductRepository = (*productRepository)(nil)
