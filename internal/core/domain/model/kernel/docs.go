// Package kernel is the shared kernel of the sales domain: the value objects and
// ambient collaborators that the order and customer aggregates have in common.
//
// The package includes:
//   - UUID: unique identifiers for aggregates and their entities
//   - IDGenerator and Clock: injectable sources of identifiers and of the current time
//   - Currency: a validated ISO-4217 style 3-letter code with locale-aware amount formatting
//   - Money: an immutable, non-negative decimal amount in a single currency
//   - DateTime: an immutable point in time that is never in the future
//   - ProductID: an opaque product reference compared by value
//
// Every value object is immutable and carries a constructor guard, so a zero value
// fails Validate and cannot be mistaken for a constructed one. Operations such as
// Money.Add return new instances and never share mutable state with their operands,
// which makes all kernel types safe for concurrent use.
package kernel
