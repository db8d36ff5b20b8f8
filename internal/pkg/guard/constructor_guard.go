// Package guard provides the constructor guard pattern used by domain
// value objects and commands to detect zero-value instances that bypassed
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own validation error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. Embed it as a private field and set it with
// NewConstructorGuard inside the constructor; a zero-value struct will then
// fail Validate.
//
// Example:
//
//	type Volume struct {
//	    liters int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewVolume(liters int) (Volume, error) {
//	    if liters <= 0 {
//	        return Volume{}, errors.New("liters must be positive")
//	    }
//	    return Volume{liters: liters, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (v Volume) Validate() error {
//	    return v.guard.Validate(ErrVolumeNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
