package commands

import (
	"context"
	"fmt"

	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

const msgUnknownReference = "must reference an existing row"

type referenceCheck struct {
	field string
	ref   ports.Reference
	id    int64
}

// checkUnitReferences adds a violation to verr for every reference of u that
// is set but points at a missing row. Unset required references are reported
// by unit.Check and skipped here. A lookup failure aborts the check.
func checkUnitReferences(
	ctx context.Context,
	refs ports.ReferenceRepository,
	u *unit.Unit,
	verr *errs.ValidationError,
) error {
	checks := []referenceCheck{
		{"owner_company_id", ports.CompanyRef, u.OwnerCompanyID()},
		{"model_id", ports.ModelRef, u.ModelID()},
		{"stock_id", ports.StockRef, u.StockID()},
		{"created_by", ports.UserRef, u.CreatedBy()},
	}
	if id := u.ShipperCompanyID(); id != nil {
		checks = append(checks, referenceCheck{"shipper_company_id", ports.CompanyRef, *id})
	}
	if id := u.ResponsibleUserID(); id != nil {
		checks = append(checks, referenceCheck{"responsible_user_id", ports.UserRef, *id})
	}
	if id := u.ParentID(); id != nil {
		checks = append(checks, referenceCheck{"parent_id", ports.UnitRef, *id})
	}

	for _, c := range checks {
		if c.id <= 0 {
			continue
		}
		ok, err := refs.Exists(ctx, c.ref, c.id)
		if err != nil {
			return fmt.Errorf("check %s %d: %w", c.ref, c.id, err)
		}
		if !ok {
			verr.Add(c.field, msgUnknownReference)
		}
	}
	return nil
}

// validateUnit runs the intrinsic checks and the reference checks of u and
// returns every violation as one *errs.ValidationError.
func validateUnit(ctx context.Context, refs ports.ReferenceRepository, u *unit.Unit) error {
	verr := u.Check()
	if err := checkUnitReferences(ctx, refs, u, verr); err != nil {
		return err
	}
	return verr.OrNil()
}
