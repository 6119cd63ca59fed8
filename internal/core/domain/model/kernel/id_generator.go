package kernel

// IDGenerator is the unique-ID source used for order, item, product and customer ids.
// Implementations must return distinct, valid UUIDs with overwhelming probability;
// no ordering between generated ids is required.
type IDGenerator interface {
	NewID() UUID
}

// RandomIDGenerator produces random version 4 UUIDs.
type RandomIDGenerator struct{}

// NewID implements IDGenerator.
func (RandomIDGenerator) NewID() UUID {
	return NewUUID()
}

// IDGeneratorFunc adapts a function to IDGenerator. Tests use it to hand out
// predetermined ids.
type IDGeneratorFunc func() UUID

// NewID implements IDGenerator.
func (f IDGeneratorFunc) NewID() UUID {
	return f()
}
