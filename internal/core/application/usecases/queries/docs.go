// Package queries contains the read side of the warehouse: unit listings,
// unit cards with their history, status choices and stock totals.
//
// Handlers read straight from PostgreSQL through gorm. Dynamic statements are
// assembled with squirrel using "?" placeholders, which gorm rebinds for the
// postgres dialect.
package queries
