package httpapi

import (
	"time"

	"github.com/vladislavdragonenkov/sales/internal/domain"
)

// httpError представляет стандартную ошибку в JSON.
type httpError struct {
	Error string `json:"error"`
}

// Цена передаётся строкой, чтобы не терять точность на float (NUMERIC в Postgres).
type createProductRequest struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

type productResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type createCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type orderLineRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type createOrderRequest struct {
	CustomerID string             `json:"customer_id"`
	Products   []orderLineRequest `json:"products"`
}

type orderItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customer_id"`
	Items      []orderItemResponse `json:"items"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		Name:      p.Name,
		Price:     p.Price.StringFixed(2),
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
		})
	}
	return orderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Items:      items,
		Total:      o.Total.StringFixed(2),
		CreatedAt:  o.CreatedAt,
	}
}
