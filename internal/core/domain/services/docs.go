// Package services holds domain services that work across unit aggregates.
//
// The package includes:
//   - TransferPlanner: decides whether a move relocates a whole unit or splits
//     part of its amount into a new child unit, and validates split requests
package services
