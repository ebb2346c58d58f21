// Package guard provides a defensive programming primitive that ensures value
// objects and entities are only created through their designated constructor
// functions. Domain objects embed a ConstructorGuard and check it in Validate,
// so that zero-value instances are always detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. It maintains an internal flag that is only
// set when the object is created through the proper constructor; any attempt to
// use a zero-value struct fails validation.
//
// Example usage:
//
//	var ErrFixNotConstructed = errors.New("LocationFix must be created via NewLocationFix")
//
//	type LocationFix struct {
//	    lat, lon float64
//	    guard    guard.ConstructorGuard
//	}
//
//	func (f LocationFix) Validate() error {
//	    return f.guard.Validate(ErrFixNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a new ConstructorGuard that marks an object as
// properly constructed. This should be called in the constructor of domain objects
// to ensure they can be distinguished from zero-value instances.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed through
// its designated constructor function.
//
// If the object was created as a zero value (not through the constructor),
// this method returns the provided validation error. If validationError is nil,
// ErrDefaultConstructorGuard is returned instead.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
