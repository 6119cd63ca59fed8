package ports

import "sales/internal/core/domain/model/order"

// SalesMetrics records business counters for successful commands.
type SalesMetrics interface {
	OrderCreated()
	OrderItemAdded()
	OrderTransitioned(op order.Operation)
	CustomerCreated()
	OrdersExpired(count int)
}
