package domain

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	// Create сохраняет новый товар. Возвращает ErrProductExists при конфликте.
	Create(product Product) error
	// FindByName возвращает первый товар с таким именем или ErrProductNotFound.
	FindByName(name string) (Product, error)
	// FindAllByID возвращает товары, чьи id входят в набор.
	// Неизвестные идентификаторы молча пропускаются: вызывающая сторона
	// обязана сверять количество найденного с запрошенным.
	FindAllByID(ids []string) ([]Product, error)
	// UpdateQuantity списывает остатки по списку обновлений и возвращает
	// изменённые товары. Каждое обновление применяется независимо, без
	// батч-атомарности; неизвестные id пропускаются; остаток может уйти
	// в минус — пол на нуле не применяется.
	UpdateQuantity(updates []QuantityUpdate) ([]Product, error)
}

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// Create сохраняет нового клиента. Возвращает ErrCustomerExists при конфликте.
	Create(customer Customer) error
	// FindByID возвращает клиента или ErrCustomerNotFound, если его нет.
	FindByID(id string) (Customer, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ вместе с позициями. После успешного
	// возврата заказ считается зафиксированным.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// ListByCustomer возвращает заказы клиента с опциональным ограничением на количество.
	ListByCustomer(customerID string, limit int) ([]Order, error)
}
