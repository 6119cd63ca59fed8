package http

import (
	"sales/internal/core/application/usecases/queries"
	"sales/internal/generated/servers"

	"golang.org/x/text/language"
)

func toOrder(view queries.OrderView, locale language.Tag) servers.Order {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			Id:        item.ID.Bytes(),
			ProductId: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Amount().StringFixed(2),
			Subtotal:  item.Subtotal.Amount().StringFixed(2),
		}
	}

	return servers.Order{
		Id:                 view.ID.Bytes(),
		CustomerId:         view.CustomerID,
		Currency:           view.Currency.Code(),
		State:              view.State.String(),
		OrderedAt:          view.OrderedAt.String(),
		OrderedAtFormatted: view.OrderedAt.Format(locale),
		Items:              items,
		Total:              view.Total.String(),
		TotalFormatted:     view.Total.Format(locale),
	}
}
