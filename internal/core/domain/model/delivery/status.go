package delivery

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure deliveries
// follow the correct physical-fulfillment workflow.
//
// State transitions:
//
//	Processing ──> PickedUp ──> InTransit ──> OutForDelivery ──> Delivered
//	     │             │            │               │
//	     └─────────────┴────────────┴───────────────┴──> Failed / Cancelled
//
// Delivered, Failed and Cancelled are terminal: no further transitions are
// allowed out of them. Skipping forward (e.g. Processing -> Delivered) is not
// a valid edge.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status: the delivery exists but no driver
	// has been assigned yet.
	Processing

	// PickedUp indicates a driver has been assigned and holds the package.
	PickedUp

	// InTransit indicates the driver is moving toward the delivery address.
	InTransit

	// OutForDelivery indicates the driver is on the final approach.
	OutForDelivery

	// Delivered is the successful terminal state.
	Delivered

	// Failed is the terminal state for deliveries that could not be completed.
	Failed

	// Cancelled is the terminal state for administratively cancelled deliveries.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Processing:     "PROCESSING",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Failed:         "FAILED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is intentionally excluded to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing:     "PROCESSING",
		PickedUp:       "PICKED_UP",
		InTransit:      "IN_TRANSIT",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Failed:         "FAILED",
		Cancelled:      "CANCELLED",
	}
}

// ParseStatus converts a wire representation (e.g. "IN_TRANSIT") into a Status.
// Returns a validation error for unrecognized input.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// Validate checks if the Status value is one of the defined valid statuses.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status, e.g. "OUT_FOR_DELIVERY".
// Returns "UNKNOWN" for invalid values. Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is a terminal state.
// Deliveries in a terminal state accept no further status or driver changes.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// CanTransitionTo reports whether the edge from s to next exists in the
// state graph. Self-transitions are not edges; callers treat them as
// idempotent no-ops before consulting the graph.
func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() {
		return false
	}

	// Failure branches are reachable from every non-terminal state.
	if next == Failed || next == Cancelled {
		return true
	}

	switch s {
	case Processing:
		return next == PickedUp
	case PickedUp:
		return next == InTransit
	case InTransit:
		return next == OutForDelivery
	case OutForDelivery:
		return next == Delivered
	default:
		return false
	}
}

// TransitionTo validates the edge from s to next and returns the new status.
//
// Returns:
//   - (next, nil) when the edge is valid
//   - (0, ErrDeliveryClosed) when s is terminal
//   - (0, ErrInvalidTransition) when the edge does not exist, including
//     forward skips such as Processing -> Delivered
//
// Idempotent same-status retries are handled by the aggregate, not here.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, ErrDeliveryClosed
	}

	if !s.CanTransitionTo(next) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}

	return next, nil
}
