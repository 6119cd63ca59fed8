package queries

import (
	"context"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/core/ports"
)

// OrderItemView is one order line together with its subtotal.
type OrderItemView struct {
	ID        kernel.UUID
	ProductID kernel.ProductID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// OrderView is the read model of a single order. Items keep the order in which
// they were added.
type OrderView struct {
	ID         kernel.UUID
	CustomerID string
	Currency   kernel.Currency
	State      order.State
	OrderedAt  kernel.DateTime
	Items      []OrderItemView
	Total      kernel.Money
}

// GetOrderQueryHandler reads through the order repository so the view is computed
// by the aggregate itself rather than by SQL.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler that loads the order aggregate
// and computes its total. Requires an OrderRepository.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	aggregate, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}

	return newOrderView(aggregate)
}

func newOrderView(aggregate *order.Order) (OrderView, error) {
	total, err := aggregate.CalculateTotalAmount()
	if err != nil {
		return OrderView{}, err
	}

	items := aggregate.Items()
	view := OrderView{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Currency:   aggregate.Currency(),
		State:      aggregate.State(),
		OrderedAt:  aggregate.OrderedAt(),
		Items:      make([]OrderItemView, 0, len(items)),
		Total:      total,
	}
	for _, item := range items {
		subtotal, itemErr := item.CalculateItemTotal()
		if itemErr != nil {
			return OrderView{}, itemErr
		}
		view.Items = append(view.Items, OrderItemView{
			ID:        item.ID(),
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Subtotal:  subtotal,
		})
	}
	return view, nil
}
