package ports

import "context"

// Reference names a table that units point at.
type Reference string

const (
	CompanyRef Reference = "company"
	ModelRef   Reference = "model"
	StockRef   Reference = "stock"
	UserRef    Reference = "user"
	OrderRef   Reference = "order"
	UnitRef    Reference = "unit"
)

// ModelInfo describes a device model together with its vendor.
type ModelInfo struct {
	ID         int64
	Name       string
	VendorID   int64
	VendorName string
	TypeID     int64
}

// ReferenceRepository answers lookups on reference data owned by other parts
// of the system. Implementations may cache.
type ReferenceRepository interface {
	Exists(ctx context.Context, ref Reference, id int64) (bool, error)

	// Model returns errs.ErrObjectNotFound for an unknown model id.
	Model(ctx context.Context, id int64) (ModelInfo, error)

	// UserShortName renders a user as "Lastname F. M.". Unknown users yield
	// errs.ErrObjectNotFound.
	UserShortName(ctx context.Context, id int64) (string, error)
}
