package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when using an improperly initialized Delivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")
	// ErrInvalidTransition is returned when a requested status edge does not
	// exist in the state graph. The caller must re-derive the correct next
	// action; the transition is never auto-corrected.
	ErrInvalidTransition = errors.New("invalid delivery status transition")
	// ErrDeliveryClosed is returned when mutating a delivery that is already
	// in a terminal state.
	ErrDeliveryClosed = errors.New("delivery is closed")
	// ErrDuplicateDelivery is returned when creating a delivery for an order
	// that already has one. Each confirmed order links to exactly one delivery.
	ErrDuplicateDelivery = errors.New("order already has a delivery")
	// ErrAlreadyAssigned is returned when assigning a driver to a delivery
	// that is not in Processing status.
	ErrAlreadyAssigned = errors.New("delivery already has a driver assigned")
)

// Delivery represents the physical fulfillment of a confirmed order.
// It is the aggregate root for the delivery lifecycle: created in Processing
// status by the order synchronizer, bound to a driver by the dispatch service,
// position-updated by the location ingestion pipeline, and driven through the
// status state machine until one of the terminal exits.
//
// Invariants:
//   - orderID is set at creation and never changes (1:1 with the order)
//   - trackingNumber is generated at creation, globally unique, never reused
//   - driverID is set only while a driver is engaged
//   - terminal states are immutable: no further status, driver, or position changes
type Delivery struct {
	// id is the unique identifier for the delivery
	id kernel.UUID

	// orderID links the delivery 1:1 to its confirmed order
	orderID kernel.UUID

	// trackingNumber is the public, non-guessable identifier
	trackingNumber kernel.TrackingNumber

	// status is the current state in the delivery lifecycle
	status Status

	// driverID is the engaged driver (nil while unassigned or released)
	driverID *kernel.UUID

	// currentPosition is the last known driver position (nil until the first fix)
	currentPosition *kernel.GeoPoint

	// address is the destination delivery address
	address string

	// contactPhone is the recipient's contact number
	contactPhone string

	createdAt time.Time
	updatedAt time.Time

	// guard ensures the delivery was created via a constructor
	guard guard.ConstructorGuard
}

// NewDelivery creates a new Delivery for a confirmed order.
// A fresh tracking number is generated and the delivery starts in Processing
// status with no driver and no known position.
//
// Parameters:
//   - id: Unique identifier for the delivery
//   - orderID: The confirmed order this delivery fulfills
//   - address: Destination address (must be non-empty)
//   - contactPhone: Recipient contact number (must be non-empty)
//
// Returns:
//   - *Delivery: The created delivery if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDelivery(id kernel.UUID, orderID kernel.UUID, address string, contactPhone string) (*Delivery, error) {
	trackingNumber, err := kernel.NewTrackingNumber()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	d := &Delivery{
		trackingNumber: trackingNumber,
		status:         Processing,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setAddress(address),
		d.setContactPhone(contactPhone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery, it does not generate a tracking number or reset the
// lifecycle; the delivery is restored exactly to its persisted state.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	trackingNumber kernel.TrackingNumber,
	status Status,
	driverID *kernel.UUID,
	currentPosition *kernel.GeoPoint,
	address string,
	contactPhone string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setTrackingNumber(trackingNumber),
		d.setStatus(status),
		d.setDriverID(driverID),
		d.setCurrentPosition(currentPosition),
		d.setAddress(address),
		d.setContactPhone(contactPhone),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the identifier of the linked order.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// TrackingNumber returns the public tracking number.
func (d *Delivery) TrackingNumber() kernel.TrackingNumber {
	return d.trackingNumber
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// DriverID returns the engaged driver's ID, or nil while unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// CurrentPosition returns the last known driver position, or nil if no
// location fix has been applied yet.
func (d *Delivery) CurrentPosition() *kernel.GeoPoint {
	return d.currentPosition
}

// Address returns the destination address.
func (d *Delivery) Address() string {
	return d.address
}

// ContactPhone returns the recipient's contact number.
func (d *Delivery) ContactPhone() string {
	return d.contactPhone
}

// CreatedAt returns the creation time (UTC).
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// UpdatedAt returns the time of the last mutation (UTC).
func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

// AssignDriver binds a driver to the delivery and moves it to PickedUp.
//
// This is the delivery-side half of the atomic assignment: it requires the
// delivery to still be in Processing status. Callers that lose the race see
// ErrAlreadyAssigned (terminal deliveries report ErrDeliveryClosed) and must
// not apply partial mutations.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if d.status.IsTerminal() {
		return ErrDeliveryClosed
	}

	if d.status != Processing {
		return ErrAlreadyAssigned
	}

	d.status = PickedUp
	d.driverID = &driverID
	d.touch()
	return nil
}

// TransitionTo advances the delivery to newStatus.
//
// Business rules:
//   - newStatus equal to the current status is an idempotent no-op success
//   - terminal deliveries reject all transitions with ErrDeliveryClosed
//   - edges not in the state graph fail with ErrInvalidTransition
//   - a successful transition to Failed or Cancelled releases the driver
//     reference, since a driver is only recorded while engaged
func (d *Delivery) TransitionTo(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	// Idempotent retry: transitioning to the current status is a success,
	// even for terminal states.
	if newStatus == d.status {
		return nil
	}

	next, err := d.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	d.status = next
	if next == Failed || next == Cancelled {
		d.driverID = nil
	}
	d.touch()
	return nil
}

// UpdatePosition records the driver's latest position on the delivery so
// trackers see the live location rather than a stale snapshot.
// Terminal deliveries reject position updates with ErrDeliveryClosed.
func (d *Delivery) UpdatePosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}

	if d.status.IsTerminal() {
		return ErrDeliveryClosed
	}

	d.currentPosition = &position
	d.touch()
	return nil
}

func (d *Delivery) touch() {
	d.updatedAt = time.Now().UTC()
}

// setID validates and sets the delivery's unique identifier.
// Private setters are used only during construction.
func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	d.trackingNumber = trackingNumber
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	d.driverID = driverID
	return nil
}

func (d *Delivery) setCurrentPosition(position *kernel.GeoPoint) error {
	if position == nil {
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}
	d.currentPosition = position
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setContactPhone(contactPhone string) error {
	if contactPhone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}
	d.contactPhone = contactPhone
	return nil
}
