package domain

import "time"

// Customer — покупатель, от имени которого оформляются заказы.
// Профиль для ядра непрозрачен: workflow нужен только факт существования клиента.
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
