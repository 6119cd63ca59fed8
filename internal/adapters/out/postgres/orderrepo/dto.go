// Package orderrepo maps the order aggregate to the orders and order_items tables.
package orderrepo

import (
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID string         `gorm:"type:varchar(255);not null;index"`
	Currency   string         `gorm:"type:char(3);not null"`
	State      int            `gorm:"type:smallint;not null;index:idx_orders_state_ordered_at,priority:1"`
	OrderedAt  time.Time      `gorm:"type:timestamptz;not null;index:idx_orders_state_ordered_at,priority:2"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table. Position keeps the append order
// of the aggregate's item sequence.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"type:int;not null"`
	ProductID string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(20,4);not null"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()

	dto := OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID(),
		Currency:   aggregate.Currency().Code(),
		State:      int(aggregate.State()),
		OrderedAt:  aggregate.OrderedAt().Time(),
		Items:      make([]OrderItemDTO, 0, len(items)),
	}
	for position, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Position:  position,
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}
	return dto
}

// toDomain expects dto.Items sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	currency, err := kernel.NewCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}
	orderedAt, err := kernel.RestoreDateTime(dto.OrderedAt)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO, currency)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.CustomerID, currency, orderedAt, order.State(dto.State), items)
}

func itemToDomain(dto OrderItemDTO, currency kernel.Currency) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.ProductIDFromString(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewMoney(dto.UnitPrice, currency)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(id, orderID, productID, dto.Quantity, unitPrice)
}
