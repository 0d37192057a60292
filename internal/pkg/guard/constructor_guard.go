// Package guard detects domain values that were declared as zero values instead
// of being built by their constructor or restore function.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field in aggregates. Constructors set it,
// a zero value leaves it unset, so methods can refuse to work on a value that skipped
// validation.
//
// Example:
//
//	var ErrStockNotConstructed = errors.New("Stock must be created via NewStock")
//
//	type Stock struct {
//	    id    int64
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewStock(id int64, name string) (*Stock, error) {
//	    if name == "" {
//	        return nil, errs.NewValueIsRequiredError("name")
//	    }
//	    return &Stock{id: id, name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s *Stock) Rename(name string) error {
//	    if err := s.guard.Validate(ErrStockNotConstructed); err != nil {
//	        return err
//	    }
//	    ...
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
