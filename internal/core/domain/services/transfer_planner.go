package services

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/unit"
)

// Messages reported for a rejected split. They are shown to the caller as is.
const (
	MsgNoResponsible = "no responsible selected"
	MsgAmountMissing = "amount not specified"
	MsgAmountExceeds = "requested amount exceeds available stock"
)

var ErrTransferRejected = errors.New("transfer rejected")

type TransferKind int

const (
	// SimpleTransfer relocates or updates the whole unit.
	SimpleTransfer TransferKind = iota + 1

	// SplitTransfer moves part of the amount into a new child unit.
	SplitTransfer
)

func (k TransferKind) String() string {
	switch k {
	case SimpleTransfer:
		return "simple"
	case SplitTransfer:
		return "split"
	default:
		return "unknown"
	}
}

// TransferPlan is the outcome of planning a move. Violations is non-empty only
// for a rejected split.
type TransferPlan struct {
	Kind       TransferKind
	Amount     int
	Violations []string
}

func (p TransferPlan) Rejected() bool {
	return len(p.Violations) > 0
}

// TransferPlanner decides how a move request is carried out.
//
// A move is simple when the request carries a serial number or asks for the
// unit's full amount. Anything else splits the unit and needs a responsible
// user and a positive amount not above the available stock. All split checks
// run so the caller sees every problem at once.
type TransferPlanner struct{}

func NewTransferPlanner() TransferPlanner {
	return TransferPlanner{}
}

func (TransferPlanner) Plan(u *unit.Unit, req unit.UpdateRequest) (TransferPlan, error) {
	if err := u.Validate(); err != nil {
		return TransferPlan{}, err
	}

	if req.HasSerial() || (req.Amount != nil && *req.Amount == u.Amount()) {
		return TransferPlan{Kind: SimpleTransfer, Amount: u.Amount()}, nil
	}

	plan := TransferPlan{Kind: SplitTransfer}
	if req.ResponsibleUserID == nil || *req.ResponsibleUserID <= 0 {
		plan.Violations = append(plan.Violations, MsgNoResponsible)
	}
	if req.Amount == nil || *req.Amount <= 0 {
		plan.Violations = append(plan.Violations, MsgAmountMissing)
	} else {
		plan.Amount = *req.Amount
		if plan.Amount > u.Amount() {
			plan.Violations = append(plan.Violations, MsgAmountExceeds)
		}
	}
	return plan, nil
}

// Portion builds the child description for an accepted split plan. Owner,
// status and stock fall back to the source unit when the request omits them;
// the comment does not.
func (TransferPlanner) Portion(plan TransferPlan, req unit.UpdateRequest, actorID int64, now time.Time) (unit.Portion, error) {
	if plan.Kind != SplitTransfer || plan.Rejected() {
		return unit.Portion{}, ErrTransferRejected
	}

	p := unit.Portion{
		Amount:    plan.Amount,
		CreatedBy: actorID,
		CreatedAt: now,
	}
	if req.OwnerCompanyID != nil {
		p.OwnerCompanyID = *req.OwnerCompanyID
	}
	if req.ResponsibleUserID != nil {
		p.ResponsibleUserID = *req.ResponsibleUserID
	}
	if req.Comment != nil {
		p.Comment = *req.Comment
	}
	if req.StatusID != nil {
		p.Status = unit.Status(*req.StatusID)
	}
	if req.StockID != nil {
		p.StockID = *req.StockID
	}
	return p, nil
}
