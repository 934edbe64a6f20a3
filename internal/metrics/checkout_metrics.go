package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics содержит метрики оформления заказов.
type CheckoutMetrics struct {
	// Счётчики операций
	ordersCreated  prometheus.Counter
	ordersRejected *prometheus.CounterVec

	// Гистограмма времени оформления
	checkoutDuration prometheus.Histogram

	// Счётчики списаний остатков
	stockDecremented       prometheus.Counter
	stockDecrementFailures prometheus.Counter
}

// NewCheckoutMetrics создаёт новый экземпляр метрик оформления заказов.
func NewCheckoutMetrics() *CheckoutMetrics {
	return newCheckoutMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCheckoutMetricsWithRegisterer(registerer prometheus.Registerer) *CheckoutMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CheckoutMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sales_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersRejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "sales_orders_rejected_total",
			Help: "Total number of rejected order requests by reason",
		}, []string{"reason"}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "sales_checkout_duration_seconds",
			Help:    "Duration of order checkout in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		stockDecremented: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sales_stock_decremented_total",
			Help: "Total number of successful stock decrements",
		}),
		stockDecrementFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "sales_stock_decrement_failures_total",
			Help: "Total number of stock decrement failures after order creation",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *CheckoutMetrics) RecordOrderCreated() {
	m.ordersCreated.Inc()
}

// RecordOrderRejected увеличивает счётчик отклонённых запросов с указанием причины.
func (m *CheckoutMetrics) RecordOrderRejected(reason string) {
	m.ordersRejected.WithLabelValues(reason).Inc()
}

// RecordCheckoutDuration записывает время оформления заказа.
func (m *CheckoutMetrics) RecordCheckoutDuration(duration time.Duration) {
	m.checkoutDuration.Observe(duration.Seconds())
}

// RecordStockDecremented увеличивает счётчик успешных списаний остатков.
func (m *CheckoutMetrics) RecordStockDecremented() {
	m.stockDecremented.Inc()
}

// RecordStockDecrementFailure увеличивает счётчик сбоев списания после создания заказа.
func (m *CheckoutMetrics) RecordStockDecrementFailure() {
	m.stockDecrementFailures.Inc()
}
