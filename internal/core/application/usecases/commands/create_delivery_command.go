package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrAddressIsRequired      = errors.New("address is required")
	ErrContactPhoneIsRequired = errors.New("contact phone is required")
)

// CreateDeliveryCommand represents a request to open a delivery record
// for a confirmed order. The record starts in PROCESSING status with a
// freshly generated tracking number.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand(orderID, "123 Main Street", "+15550100")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	address      string
	contactPhone string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to open a delivery record.
// Validates that the order ID is valid and address and contact phone are present.
func NewCreateDeliveryCommand(orderID kernel.UUID, address string, contactPhone string) (CreateDeliveryCommand, error) {
	deliveryCommand := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliveryCommand.setOrderID(orderID),
		deliveryCommand.setAddress(address),
		deliveryCommand.setContactPhone(contactPhone),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return deliveryCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order this delivery fulfils.
func (c CreateDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Address returns the delivery destination address.
func (c CreateDeliveryCommand) Address() string {
	return c.address
}

// ContactPhone returns the recipient contact phone.
func (c CreateDeliveryCommand) ContactPhone() string {
	return c.contactPhone
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateDeliveryCommand) setContactPhone(contactPhone string) error {
	if contactPhone == "" {
		return ErrContactPhoneIsRequired
	}

	c.contactPhone = contactPhone
	return nil
}
