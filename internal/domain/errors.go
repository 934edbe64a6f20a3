package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора клиента.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствия хотя бы одной позиции в заказе.
	ErrItemsRequired = errors.New("order must contain at least one product")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrItemQuantityInvalid = errors.New("item quantity must be greater than zero")
	// Ошибка, если зафиксированная цена позиции отрицательная.
	ErrItemPriceInvalid = errors.New("item price must be non-negative")
	// Ошибка несоответствия суммы заказа и сумм позиций.
	ErrTotalMismatch = errors.New("order total does not match items sum")
	// Ошибка отсутствующего названия товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceInvalid = errors.New("product price must be non-negative")
	// Ошибка отрицательного остатка при создании товара.
	ErrProductQuantityInvalid = errors.New("product quantity must be non-negative")

	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidProducts сигнализирует, что запрос содержит неизвестные
	// каталогу или продублированные идентификаторы товаров.
	ErrInvalidProducts = errors.New("invalid products in order")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	// В workflow оформления заказа эта ветка защитная: её достижение означает
	// рассинхронизацию между строками запроса и выборкой каталога.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductOutOfStock — запрошенное количество превышает остаток на складе.
	ErrProductOutOfStock = errors.New("product out of stock")

	// ErrProductExists возвращается при попытке создать товар с занятым именем или id.
	ErrProductExists = errors.New("product already exists")
	// ErrCustomerExists возвращается при конфликте идентификатора клиента.
	ErrCustomerExists = errors.New("customer already exists")
	// ErrOrderExists возвращается, если заказ с таким ID уже сохранён.
	ErrOrderExists = errors.New("order already exists")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
)

// IsNotFound проверяет, относится ли ошибка к классу "не найдено".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsOutOfStock проверяет, является ли ошибка нехваткой остатка.
func IsOutOfStock(err error) bool {
	return errors.Is(err, ErrProductOutOfStock)
}
