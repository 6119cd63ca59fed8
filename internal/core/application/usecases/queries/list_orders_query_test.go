package queries_test

import (
	"testing"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("should list every state when empty", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(" ")
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		_, filtered := query.State()
		assert.False(t, filtered)
	})

	t.Run("should parse a state name", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("CONFIRMED")
		require.NoError(t, err)

		state, filtered := query.State()
		assert.True(t, filtered)
		assert.Equal(t, order.Confirmed, state)
	})

	t.Run("should reject an unknown state", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery("LOST")
		require.Error(t, err)
	})

	t.Run("should refuse a zero-value query", func(t *testing.T) {
		require.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}
