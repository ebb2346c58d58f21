// Package delivery implements the Delivery aggregate: the physical-fulfillment
// record linked 1:1 to a confirmed order.
//
// The aggregate owns the delivery status state machine
// (Processing -> PickedUp -> InTransit -> OutForDelivery -> Delivered, with
// Failed and Cancelled reachable from every non-terminal state), the immutable
// order link, the generated tracking number, and the last known driver
// position. All mutation goes through the aggregate's methods; terminal
// deliveries are immutable.
package delivery
