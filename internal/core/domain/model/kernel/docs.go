// Package kernel provides core domain primitives for the dispatch and tracking engine.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A value object for validated WGS-84 coordinates with great-circle distance
//   - TrackingNumber: The unique, non-guessable public identifier of a delivery
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
