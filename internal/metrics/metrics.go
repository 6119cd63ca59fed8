// Package metrics exposes the service's Prometheus instruments.
package metrics

import (
	"strconv"
	"time"

	"sales/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sales"

// Metrics tracks order and customer activity plus HTTP latency.
type Metrics struct {
	OrdersCreated       prometheus.Counter
	OrderItemsAdded     prometheus.Counter
	OrderTransitions    *prometheus.CounterVec
	CustomersCreated    prometheus.Counter
	ExpiredOrders       prometheus.Counter
	HTTPRequestDuration *prometheus.HistogramVec
}

// New registers every instrument on reg. Registering twice on the same
// registerer panics, as with promauto.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created",
		}),
		OrderItemsAdded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_items_added_total",
			Help:      "Total number of items added to orders",
		}),
		OrderTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_transitions_total",
			Help:      "Total number of successful order lifecycle operations",
		}, []string{"operation"}),
		CustomersCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "customers_created_total",
			Help:      "Total number of customers created",
		}),
		ExpiredOrders: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_expired_total",
			Help:      "Total number of pending orders cancelled after their TTL",
		}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}

	// Pre-create the operation series so dashboards see zeros before the first event.
	for _, op := range order.Operations() {
		m.OrderTransitions.WithLabelValues(op.String())
	}

	return m
}

// OrderCreated counts a created order.
func (m *Metrics) OrderCreated() {
	m.OrdersCreated.Inc()
}

// OrderItemAdded counts an item appended to an order.
func (m *Metrics) OrderItemAdded() {
	m.OrderItemsAdded.Inc()
}

// OrderTransitioned counts a successful state change, labelled by operation.
func (m *Metrics) OrderTransitioned(op order.Operation) {
	m.OrderTransitions.WithLabelValues(op.String()).Inc()
}

// CustomerCreated counts a registered customer.
func (m *Metrics) CustomerCreated() {
	m.CustomersCreated.Inc()
}

// OrdersExpired adds the number of orders cancelled by one expiry sweep.
func (m *Metrics) OrdersExpired(count int) {
	m.ExpiredOrders.Add(float64(count))
}

// ObserveHTTPRequest records one request. route is the registered path pattern,
// not the raw URL, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
