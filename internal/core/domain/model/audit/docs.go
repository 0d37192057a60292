// Package audit models the append-only action log kept for every unit.
//
// Entries are created on every unit create, update, split and status
// transition. They are never changed afterwards and disappear only together
// with the unit they describe. The helpers in actions.go compose the action
// texts so that every writer phrases the same event the same way.
package audit
