package httpapi

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// NewRouter собирает маршруты API поверх gin.
func NewRouter(h *Handlers, logger *log.Entry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(logger))

	router.POST("/products", h.createProduct)
	router.GET("/products", h.findProduct)
	router.POST("/customers", h.createCustomer)
	router.GET("/customers/:id/orders", h.listCustomerOrders)
	router.POST("/orders", h.createOrder)
	router.GET("/orders/:id", h.getOrder)

	return router
}
