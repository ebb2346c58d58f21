// Package services contains domain services that implement business logic
// spanning multiple aggregates.
//
// DriverDispatcher selects the nearest eligible driver for a delivery
// destination using great-circle distance, with deterministic tie-breaking.
// It operates purely on in-memory aggregates; transactional concerns belong
// to the application layer.
package services
