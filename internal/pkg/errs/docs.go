// Package errs holds the error values shared by the warehouse domain, its use
// cases and the adapters that translate them into HTTP statuses.
//
// Single-value failures carry the parameter they are about and unwrap to a
// sentinel, so callers branch with errors.Is:
//   - ValueIsRequiredError unwraps to ErrValueIsRequired
//   - ValueIsInvalidError unwraps to ErrValueIsInvalid, also used for foreign
//     key and check violations reported by postgres
//   - ValueIsOutOfRangeError unwraps to ErrValueIsOutOfRange
//   - ObjectNotFoundError unwraps to ErrObjectNotFound
//
// ErrConcurrencyConflict marks a write that lost against a newer version of
// the row.
//
// ValidationError never stops at the first problem: unit saves and splits add
// every violated field and return the accumulated result, so a client sees
// all messages at once.
package errs
