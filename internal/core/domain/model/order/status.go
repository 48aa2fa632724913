package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with a directed transition graph so orders
// can only move along the defined business workflow.
//
// State transitions:
//
//	NEW ──> PROCESSING ──> READY ──> DISPATCHED ──> COMPLETED
//	 │          │            │
//	 └──────────┴────────────┴──> CANCELLED
//
// COMPLETED and CANCELLED are terminal; DISPATCHED orders can no longer be
// cancelled because the rider is already on the road.
type Status string

const (
	// Unknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status values.
	Unknown Status = ""

	// New is the initial status assigned when a merchant creates an order.
	New Status = "NEW"

	// Processing indicates the merchant has accepted the order and is preparing it.
	Processing Status = "PROCESSING"

	// Ready indicates the order is packed and a rider has been designated.
	// Entering Ready requires a rider phone number and mints the rider token.
	Ready Status = "READY"

	// Dispatched indicates the rider has picked the order up.
	// Entering Dispatched mints the customer token.
	Dispatched Status = "DISPATCHED"

	// Completed indicates the order was delivered. Terminal.
	Completed Status = "COMPLETED"

	// Cancelled indicates the order was abandoned before dispatch. Terminal.
	Cancelled Status = "CANCELLED"
)

// transitionGraph holds the legal outgoing edges for each status.
// Terminal states have no entry.
var transitionGraph = map[Status][]Status{
	New:        {Processing, Cancelled},
	Processing: {Ready, Cancelled},
	Ready:      {Dispatched, Cancelled},
	Dispatched: {Completed},
}

// StatusFromString parses a status received from a request or the database.
// Returns an error for anything outside the defined set.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unknown, err
	}
	return status, nil
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	switch s {
	case New, Processing, Ready, Dispatched, Completed, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire representation of the status, or "UNKNOWN" for
// values outside the defined set. Implements fmt.Stringer.
func (s Status) String() string {
	if s.Validate() != nil {
		return "UNKNOWN"
	}
	return string(s)
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitionGraph[s]) == 0
}

// CanTransitionTo reports whether the directed graph contains an edge from
// the current status to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitionGraph[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the edge is legal, or an InvalidTransitionError
// naming both statuses otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
