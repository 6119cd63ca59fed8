package queries

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists order summaries, optionally restricted to one state.
//
// Example:
//
//	query, err := NewListOrdersQuery("PENDING")
//	summaries, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	state order.State
	guard guard.ConstructorGuard
}

// NewListOrdersQuery accepts a state name such as "PENDING"; an empty string
// lists orders in every state.
func NewListOrdersQuery(state string) (ListOrdersQuery, error) {
	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(state) == "" {
		return query, nil
	}

	parsed, err := order.ParseState(state)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	query.state = parsed
	return query, nil
}

// State returns the filter and false when every state is listed.
func (q ListOrdersQuery) State() (order.State, bool) {
	return q.state, q.state != order.Unknown
}

// Validate reports whether the query was built by NewListOrdersQuery.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
