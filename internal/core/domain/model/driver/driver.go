package driver

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
	// ErrDriverBusy is returned when a driver engaged in an active delivery
	// attempts to go offline before completing or being released.
	ErrDriverBusy = errors.New("driver has an active delivery")
	// ErrDriverNotAvailable is returned when assigning a delivery to a driver
	// that is offline, already engaged, unverified, or suspended.
	ErrDriverNotAvailable = errors.New("driver is not available for assignment")
	// ErrNoActiveDelivery is returned when completing a delivery for a driver
	// that has none.
	ErrNoActiveDelivery = errors.New("driver has no active delivery")
	// ErrStaleFix is returned by RecordFix when the fix is not strictly newer
	// than the stored one. Callers drop stale fixes silently; this error only
	// signals the drop, it is never surfaced to the sender.
	ErrStaleFix = errors.New("location fix is not newer than the stored one")
)

// Driver represents a delivery driver in the system.
// It is an aggregate root that manages the driver's identity, availability,
// engagement with a delivery, and last known location.
//
// Invariants:
//   - an engaged driver (currentDeliveryID != nil) is never available; the
//     converse need not hold, a driver may simply be offline between deliveries
//   - lastFix.ObservedAt() is monotonically non-decreasing: out-of-order
//     fixes are discarded, never applied
//   - only verified (isVerified) and non-suspended (isActive) drivers are
//     eligible for assignments
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name is the driver's display name from the linked user profile
	name string
	// phone is the driver's contact number from the linked user profile
	phone string
	// vehicleType describes the vehicle, e.g. "bike" or "car"
	vehicleType string
	// isVerified is the admin-gated verification flag
	isVerified bool
	// isActive is false while the driver is suspended
	isActive bool
	// isAvailable is the driver-controlled online/offline toggle
	isAvailable bool
	// currentDeliveryID is the delivery the driver is engaged in (at most one)
	currentDeliveryID *kernel.UUID
	// lastFix is the last accepted location observation
	lastFix *LocationFix
	// guard ensures the driver was created via a constructor
	guard guard.ConstructorGuard
}

// NewDriver creates a new Driver with the given profile.
// New drivers start unverified, active, offline, with no delivery and no
// known location; verification is granted administratively before the driver
// can receive assignments.
func NewDriver(id kernel.UUID, name string, phone string, vehicleType string) (*Driver, error) {
	d := &Driver{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including availability, engagement and the last accepted fix.
func RestoreDriver(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType string,
	isVerified bool,
	isActive bool,
	isAvailable bool,
	currentDeliveryID *kernel.UUID,
	lastFix *LocationFix,
) (*Driver, error) {
	d := &Driver{
		isVerified:  isVerified,
		isActive:    isActive,
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicleType(vehicleType),
		d.setCurrentDeliveryID(currentDeliveryID),
		d.setLastFix(lastFix),
	); err != nil {
		return nil, err
	}

	if d.currentDeliveryID != nil && d.isAvailable {
		return nil, errs.NewValueIsInvalidErrorWithCause("driver",
			errors.New("engaged driver cannot be available"))
	}

	return d, nil
}

// Validate checks if the Driver was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's contact number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleType returns the driver's vehicle type.
func (d *Driver) VehicleType() string {
	return d.vehicleType
}

// IsVerified reports whether an administrator has verified the driver.
func (d *Driver) IsVerified() bool {
	return d.isVerified
}

// IsActive reports whether the driver is not suspended.
func (d *Driver) IsActive() bool {
	return d.isActive
}

// IsAvailable reports whether the driver is online and accepting assignments.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// CurrentDeliveryID returns the engaged delivery's ID, or nil when free.
func (d *Driver) CurrentDeliveryID() *kernel.UUID {
	return d.currentDeliveryID
}

// LastFix returns the last accepted location observation, or nil if the
// driver has never reported one.
func (d *Driver) LastFix() *LocationFix {
	return d.lastFix
}

// IsEligible reports whether the driver can receive a new assignment:
// active, verified, available, and not currently engaged.
func (d *Driver) IsEligible() bool {
	return d.isActive && d.isVerified && d.isAvailable && d.currentDeliveryID == nil
}

// Verify marks the driver as admin-verified.
func (d *Driver) Verify() {
	d.isVerified = true
}

// Suspend deactivates the driver, excluding them from eligibility
// regardless of availability.
func (d *Driver) Suspend() {
	d.isActive = false
}

// Reinstate reverses a suspension.
func (d *Driver) Reinstate() {
	d.isActive = true
}

// GoOnline marks the driver as available for assignments.
// Going online is idempotent.
func (d *Driver) GoOnline() {
	d.isAvailable = true
}

// GoOffline marks the driver as unavailable.
// Fails with ErrDriverBusy while the driver is engaged in an active delivery:
// the online session is bounded by completion or administrative release, and
// the client-side location push loop is torn down together with this
// transition.
func (d *Driver) GoOffline() error {
	if d.currentDeliveryID != nil {
		return ErrDriverBusy
	}

	d.isAvailable = false
	return nil
}

// BeginDelivery engages the driver with a delivery.
//
// This is the driver-side half of the atomic assignment check-and-set: the
// driver must be available and free (and eligible at all). On success the
// driver becomes unavailable and holds the delivery as its single engagement.
func (d *Driver) BeginDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	if !d.IsEligible() {
		return ErrDriverNotAvailable
	}

	d.isAvailable = false
	d.currentDeliveryID = &deliveryID
	return nil
}

// CompleteDelivery releases the driver from its active delivery and makes it
// available again. Fails with ErrNoActiveDelivery when the driver is free.
func (d *Driver) CompleteDelivery() error {
	if d.currentDeliveryID == nil {
		return ErrNoActiveDelivery
	}

	d.currentDeliveryID = nil
	d.isAvailable = true
	return nil
}

// Release unconditionally frees the driver: engagement cleared, availability
// restored. Used by administrative cancellation/failure so a dead delivery
// never strands a driver as permanently busy.
func (d *Driver) Release() {
	d.currentDeliveryID = nil
	d.isAvailable = true
}

// RecordFix applies a location observation to the driver.
//
// The per-driver monotonicity rule lives here: a fix whose ObservedAt is not
// strictly newer than the stored one returns ErrStaleFix and leaves the stored
// location untouched. GPS fixes may arrive out of order over lossy links, so
// callers treat ErrStaleFix as a silent drop, not a failure.
func (d *Driver) RecordFix(fix LocationFix) error {
	if err := fix.Validate(); err != nil {
		return err
	}

	if d.lastFix != nil && !fix.ObservedAt().After(d.lastFix.ObservedAt()) {
		return ErrStaleFix
	}

	d.lastFix = &fix
	return nil
}

// setID validates and sets the driver's unique identifier.
// Private setters are used only during construction.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	d.vehicleType = vehicleType
	return nil
}

func (d *Driver) setCurrentDeliveryID(deliveryID *kernel.UUID) error {
	if deliveryID == nil {
		return nil
	}
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	d.currentDeliveryID = deliveryID
	return nil
}

func (d *Driver) setLastFix(fix *LocationFix) error {
	if fix == nil {
		return nil
	}
	if err := fix.Validate(); err != nil {
		return err
	}
	d.lastFix = fix
	return nil
}
