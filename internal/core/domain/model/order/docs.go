// Package order holds the sales order aggregate.
//
// An Order is created PENDING for a customer in a fixed currency, collects line
// items while PENDING or CONFIRMED, and then moves through its lifecycle:
//
//	PENDING ──confirm──> CONFIRMED ──ship──> SHIPPED
//	   │                     │
//	   └───────cancel────────┴──────────> CANCELLED
//
// SHIPPED and CANCELLED are terminal. Items are created only through
// Order.AddItem, priced in the order's currency, and never removed, so the
// total is always a single-currency sum of unit price times quantity.
//
// Mutating methods validate before they change anything: a rejected call
// leaves the aggregate exactly as it was. An Order is not safe for concurrent
// mutation; callers serialize access per order id.
package order
