package memory

import (
	"sync"
	"time"

	"github.com/vladislavdragonenkov/sales/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]domain.Product
	// ids хранит порядок вставки, чтобы FindByName детерминированно
	// возвращал первый созданный товар при дублирующихся именах.
	ids []string
}

// NewProductRepository возвращает in-memory каталог для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]domain.Product),
	}
}

// Create сохраняет новый товар, если ID ещё не занят.
func (r *productRepositoryInMemory) Create(product domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID]; exists {
		return domain.ErrProductExists
	}
	r.items[product.ID] = product
	r.ids = append(r.ids, product.ID)
	return nil
}

// FindByName возвращает первый по порядку создания товар с таким именем.
func (r *productRepositoryInMemory) FindByName(name string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.ids {
		if product := r.items[id]; product.Name == name {
			return product, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

// FindAllByID возвращает товары по набору идентификаторов, молча пропуская
// неизвестные. Порядок результата следует порядку запрошенных id.
func (r *productRepositoryInMemory) FindAllByID(ids []string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.items[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

// UpdateQuantity списывает остатки по каждому обновлению независимо.
// Неизвестные id пропускаются; остаток может стать отрицательным —
// проверка достаточности остатка лежит на вызывающей стороне.
func (r *productRepositoryInMemory) UpdateQuantity(updates []domain.QuantityUpdate) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := make([]domain.Product, 0, len(updates))
	for _, update := range updates {
		product, ok := r.items[update.ProductID]
		if !ok {
			continue
		}
		product.Quantity -= update.Quantity
		product.UpdatedAt = time.Now().UTC()
		r.items[update.ProductID] = product
		updated = append(updated, product)
	}
	return updated, nil
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
