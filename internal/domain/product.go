package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар каталога: текущую цену и остаток на складе.
type Product struct {
	ID   string
	Name string
	// Price — актуальная цена каталога. При оформлении заказа она копируется
	// в позицию, и дальнейшие изменения цены на заказ не влияют.
	Price decimal.Decimal
	// Quantity — доступный остаток на складе, уменьшается при оформлении заказа.
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет базовые инварианты товара и возвращает список замечаний.
func (p *Product) Validate() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price.IsNegative() {
		errs = append(errs, ErrProductPriceInvalid)
	}
	if p.Quantity < 0 {
		errs = append(errs, ErrProductQuantityInvalid)
	}

	return errs
}

// QuantityUpdate задаёт списание остатка конкретного товара.
// Quantity трактуется как величина списания, а не новое значение остатка.
type QuantityUpdate struct {
	ProductID string
	Quantity  int
}
