package order

import (
	"errors"
	"fmt"

	"sales/internal/pkg/errs"
)

var (
	// ErrInvalidStateTransition is the cause carried when an operation is not allowed from the current state.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrInvalidOrderState is the cause carried when items are added to a shipped or cancelled order.
	ErrInvalidOrderState = errors.New("order does not accept items in its current state")
)

// State is the lifecycle position of an order. The zero value Unknown is invalid
// and only appears when a State was never set.
type State int

const (
	Unknown State = iota
	Pending
	Confirmed
	Shipped
	Cancelled
)

var stateNames = map[State]string{
	Unknown:   "UNKNOWN",
	Pending:   "PENDING",
	Confirmed: "CONFIRMED",
	Shipped:   "SHIPPED",
	Cancelled: "CANCELLED",
}

// ParseState maps a state name such as "PENDING" back to its State.
func ParseState(name string) (State, error) {
	for s, n := range stateNames {
		if s != Unknown && n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a known state", name))
}

// String returns the upper-case state name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return stateNames[Unknown]
}

// Validate rejects Unknown and out-of-range values, such as a corrupted column.
func (s State) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

// IsTerminal reports whether no operation can leave s.
func (s State) IsTerminal() bool {
	return s == Shipped || s == Cancelled
}

// ValidateAddItem returns an error carrying ErrInvalidOrderState unless the state
// still accepts new items.
func (s State) ValidateAddItem() error {
	if s != Pending && s != Confirmed {
		return errs.NewValueIsInvalidErrorWithCause(
			"state",
			fmt.Errorf("%w: %s", ErrInvalidOrderState, s),
		)
	}
	return nil
}

// Operation names a lifecycle command applied to an order.
type Operation string

const (
	OperationConfirm Operation = "confirm"
	OperationShip    Operation = "ship"
	OperationCancel  Operation = "cancel"
)

// transitions lists, per operation, every state it may start from and where it leads.
// A pair missing from the table is an invalid transition.
var transitions = map[Operation]map[State]State{
	OperationConfirm: {Pending: Confirmed},
	OperationShip:    {Confirmed: Shipped},
	OperationCancel:  {Pending: Cancelled, Confirmed: Cancelled},
}

// Operations returns the known operations in lifecycle order.
func Operations() []Operation {
	return []Operation{OperationConfirm, OperationShip, OperationCancel}
}

// ParseOperation accepts "confirm", "ship" or "cancel".
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if err := op.Validate(); err != nil {
		return "", err
	}
	return op, nil
}

// Validate rejects operations missing from the transition table.
func (op Operation) Validate() error {
	if _, ok := transitions[op]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("operation", fmt.Errorf("%q is not a known operation", string(op)))
	}
	return nil
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	return string(op)
}

// Apply returns the state reached by running op from s. The error names the
// current state and carries ErrInvalidStateTransition.
func (s State) Apply(op Operation) (State, error) {
	if err := op.Validate(); err != nil {
		return Unknown, err
	}

	next, ok := transitions[op][s]
	if !ok {
		return Unknown, errs.NewStateTransitionIsInvalidErrorWithCause(op.String(), s.String(), ErrInvalidStateTransition)
	}
	return next, nil
}
