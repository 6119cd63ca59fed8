package queries

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSummary is one row of the order list.
type OrderSummary struct {
	ID         kernel.UUID
	CustomerID string
	State      order.State
	OrderedAt  time.Time
	ItemCount  int
	Total      kernel.Money
}

// ListOrdersQueryHandler reads order summaries straight from the database.
// Totals are summed in SQL, which gives the same result as folding item totals
// over the aggregate since numeric arithmetic is exact.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order summaries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle returns summaries sorted by ordered_at, then id.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	state, filtered := query.State()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.currency,
			o.state,
			o.ordered_at,
			COUNT(i.id),
			COALESCE(SUM(i.quantity * i.unit_price), 0)
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE (? = FALSE OR o.state = ?)
		GROUP BY o.id
		ORDER BY o.ordered_at, o.id
	`, filtered, int(state)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			customerID string
			code       string
			stateValue int
			orderedAt  time.Time
			itemCount  int
			total      decimal.Decimal
		)
		if err = rows.Scan(&id, &customerID, &code, &stateValue, &orderedAt, &itemCount, &total); err != nil {
			return nil, err
		}

		summary, mapErr := newOrderSummary(id, customerID, code, stateValue, orderedAt, itemCount, total)
		if mapErr != nil {
			return nil, mapErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func newOrderSummary(
	id uuid.UUID,
	customerID string,
	code string,
	stateValue int,
	orderedAt time.Time,
	itemCount int,
	total decimal.Decimal,
) (OrderSummary, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}

	state := order.State(stateValue)
	if err = state.Validate(); err != nil {
		return OrderSummary{}, err
	}

	currency, err := kernel.NewCurrency(code)
	if err != nil {
		return OrderSummary{}, err
	}

	money, err := kernel.NewMoney(total, currency)
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:         orderID,
		CustomerID: customerID,
		State:      state,
		OrderedAt:  orderedAt.UTC(),
		ItemCount:  itemCount,
		Total:      money,
	}, nil
}
