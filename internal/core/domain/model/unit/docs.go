// Package unit holds the Unit aggregate: one physical device or a batch of
// un-serialized stock sitting in a warehouse.
//
// The package includes:
//   - Unit: the aggregate root with ownership, location, quantity and lineage
//   - Status: the fixed status catalog with display labels and colour hints
//   - UpdateRequest: the explicit set of fields a caller may change
//   - Snapshot: a flat string view used to describe changes in the audit log
//
// Key business rules:
//   - owner company, model, stock, status and author are required
//   - amount is never negative
//   - a unit produced by a split carries the source unit id as its parent and
//     the source amount is reduced by exactly the split amount
//   - amount and serial are not cross-validated, a serialized unit may hold
//     any amount
//   - parent chains are not checked for depth or cycles
package unit
