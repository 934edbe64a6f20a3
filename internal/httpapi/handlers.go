package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/sales/internal/domain"
	"github.com/vladislavdragonenkov/sales/internal/service/catalog"
	"github.com/vladislavdragonenkov/sales/internal/service/checkout"
)

// Handlers связывает HTTP-маршруты с сервисами.
type Handlers struct {
	catalog  catalog.Service
	checkout checkout.Service
	orders   domain.OrderRepository
	logger   *log.Entry
}

// NewHandlers создаёт набор HTTP-обработчиков.
func NewHandlers(
	catalogSvc catalog.Service,
	checkoutSvc checkout.Service,
	orders domain.OrderRepository,
	logger *log.Entry,
) *Handlers {
	if logger == nil {
		logger = log.New().WithField("component", "httpapi")
	}
	return &Handlers{
		catalog:  catalogSvc,
		checkout: checkoutSvc,
		orders:   orders,
		logger:   logger,
	}
}

func (h *Handlers) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "invalid request body"})
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "invalid price format"})
		return
	}

	product, err := h.catalog.CreateProduct(req.Name, price, req.Quantity)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *Handlers) findProduct(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, httpError{Error: "query parameter 'name' is required"})
		return
	}

	product, err := h.catalog.FindProductByName(name)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(product))
}

func (h *Handlers) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "invalid request body"})
		return
	}

	customer, err := h.catalog.CreateCustomer(req.Name, req.Email)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (h *Handlers) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: "invalid request body"})
		return
	}

	lines := make([]checkout.ProductInput, 0, len(req.Products))
	for _, line := range req.Products {
		lines = append(lines, checkout.ProductInput{ID: line.ID, Quantity: line.Quantity})
	}

	order, err := h.checkout.CreateOrder(checkout.CreateOrderInput{
		CustomerID: req.CustomerID,
		Products:   lines,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *Handlers) getOrder(c *gin.Context) {
	order, err := h.orders.Get(c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handlers) listCustomerOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, httpError{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	orders, err := h.orders.ListByCustomer(c.Param("id"), limit)
	if err != nil {
		h.writeError(c, err)
		return
	}

	responses := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}

	c.JSON(http.StatusOK, responses)
}

// writeError переводит доменную ошибку в HTTP-статус.
func (h *Handlers) writeError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("внутренняя ошибка обработчика")
		c.JSON(status, httpError{Error: "internal error"})
		return
	}
	c.JSON(status, httpError{Error: err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrProductExists),
		errors.Is(err, domain.ErrCustomerExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrProductOutOfStock):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidProducts),
		errors.Is(err, domain.ErrCustomerRequired),
		errors.Is(err, domain.ErrProductNameRequired),
		errors.Is(err, domain.ErrProductPriceInvalid),
		errors.Is(err, domain.ErrProductQuantityInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
