// Package order holds the engine's view of the external Order entity.
// Orders are owned by the order-management collaborator; this engine only
// reads confirmed orders and moves them forward when their linked delivery
// reaches a terminal state.
package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when using an improperly initialized Order.
var ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

// Status is the external order status vocabulary relevant to this engine.
type Status string

const (
	// StatusPending is an order awaiting confirmation; not yet visible to the engine.
	StatusPending Status = "PENDING"
	// StatusConfirmed is the entry condition for delivery creation.
	StatusConfirmed Status = "CONFIRMED"
	// StatusDelivered mirrors a successfully delivered linked delivery.
	StatusDelivered Status = "DELIVERED"
	// StatusCancelled mirrors a failed or cancelled linked delivery.
	StatusCancelled Status = "CANCELLED"
)

// Validate checks the status against the known vocabulary.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusConfirmed, StatusDelivered, StatusCancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a known order status", string(s)))
	}
}

// IsFinal reports whether the order has reached a state this engine
// never moves it out of.
func (s Status) IsFinal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Order is the engine's read/write mirror of an external purchase order.
// The synchronizer is the only component permitted to mutate it, and only
// forward: a confirmed order becomes DELIVERED or CANCELLED when its linked
// delivery terminates.
type Order struct {
	id              kernel.UUID
	status          Status
	deliveryAddress string
	contactPhone    string
	createdAt       time.Time
	updatedAt       time.Time
	guard           guard.ConstructorGuard
}

// RestoreOrder reconstructs an Order from the shared order store.
// There is no New constructor: orders are created by the order-management
// collaborator, never by this engine.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	deliveryAddress string,
	contactPhone string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		deliveryAddress: deliveryAddress,
		contactPhone:    contactPhone,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the order's current status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryAddress returns the destination address captured at checkout.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// ContactPhone returns the recipient's contact number.
func (o *Order) ContactPhone() string {
	return o.contactPhone
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the order's last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// MarkDelivered mirrors a delivered linked delivery onto the order.
// Already-final orders reject the move; mirroring the same final status
// twice is an idempotent success.
func (o *Order) MarkDelivered() error {
	return o.markFinal(StatusDelivered)
}

// MarkCancelled mirrors a failed or cancelled linked delivery onto the order.
func (o *Order) MarkCancelled() error {
	return o.markFinal(StatusCancelled)
}

func (o *Order) markFinal(status Status) error {
	if o.status == status {
		return nil
	}
	if o.status.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order is already %s", o.status))
	}

	o.status = status
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
