package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// ID позиции нужен для однозначной идентификации и аудита.
	ID string
	// ProductID — ссылка на товар каталога.
	ProductID string
	// Quantity — количество единиц товара в заказе.
	Quantity int
	// UnitPrice — цена каталога, зафиксированная в момент оформления заказа.
	UnitPrice decimal.Decimal
	// CreatedAt фиксирует момент добавления позиции в заказ.
	CreatedAt time.Time
}

// Order агрегирует заказ и его позиции. После создания заказ неизменяем.
type Order struct {
	ID         string
	CustomerID string
	Items      []OrderItem
	// Total — сумма qty * unit_price по всем позициям.
	Total     decimal.Decimal
	CreatedAt time.Time
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID == "" {
		errs = append(errs, ErrCustomerRequired)
	}
	if len(o.Items) == 0 {
		errs = append(errs, ErrItemsRequired)
	}

	// Сверяем сумму заказа с суммой позиций: qty * unit_price.
	calc := decimal.Zero
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrItemQuantityInvalid)
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, ErrItemPriceInvalid)
		}
		calc = calc.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if !calc.Equal(o.Total) {
		errs = append(errs, ErrTotalMismatch)
	}

	return errs
}
