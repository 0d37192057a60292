package http

import (
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/comment"
	"warehouse/internal/core/domain/model/unit"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newError(code int, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

type ResultResponse struct {
	Code     int      `json:"code"`
	Messages []string `json:"messages"`
}

func newResult(r commands.Result) ResultResponse {
	messages := r.Messages
	if messages == nil {
		messages = []string{}
	}
	return ResultResponse{Code: int(r.Code), Messages: messages}
}

type SavedUnitResponse struct {
	ResultResponse
	ID int64 `json:"id"`
}

type StatusResponse struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

func newStatus(s unit.Status) StatusResponse {
	return StatusResponse{ID: int(s), Label: s.Label(), Color: s.Color()}
}

// UnitRequest is the body of create, update and move calls. Absent fields
// stay untouched.
type UnitRequest struct {
	OwnerCompanyID    *int64  `json:"owner_company_id,omitempty"`
	ShipperCompanyID  *int64  `json:"shipper_company_id,omitempty"`
	ModelID           *int64  `json:"model_id,omitempty"`
	StockID           *int64  `json:"stock_id,omitempty"`
	Serial            *string `json:"serial,omitempty"`
	Amount            *int    `json:"amount,omitempty"`
	StatusID          *int    `json:"status_id,omitempty"`
	ResponsibleUserID *int64  `json:"responsible_user_id,omitempty"`
	PinCode           *string `json:"pin_code,omitempty"`
	Comment           *string `json:"comment,omitempty"`
	ParentID          *int64  `json:"parent_id,omitempty"`
	OrderID           *int64  `json:"order_id,omitempty"`
	OrderComment      *string `json:"order_comment,omitempty"`
}

func (r UnitRequest) toDomain(id int64) unit.UpdateRequest {
	req := unit.UpdateRequest{
		OwnerCompanyID:    r.OwnerCompanyID,
		ShipperCompanyID:  r.ShipperCompanyID,
		ModelID:           r.ModelID,
		StockID:           r.StockID,
		Serial:            r.Serial,
		Amount:            r.Amount,
		StatusID:          r.StatusID,
		ResponsibleUserID: r.ResponsibleUserID,
		PinCode:           r.PinCode,
		Comment:           r.Comment,
		ParentID:          r.ParentID,
		OrderID:           r.OrderID,
		OrderComment:      r.OrderComment,
	}
	if id > 0 {
		req.ID = &id
	}
	return req
}

type OrderLinkRequest struct {
	OrderID int64  `json:"order_id"`
	Comment string `json:"comment"`
}

type StatusChangeRequest struct {
	StatusID          int    `json:"status_id"`
	ResponsibleUserID *int64 `json:"responsible_user_id,omitempty"`
}

type StatusCommentRequest struct {
	FromStatusID      int   `json:"from_status_id"`
	ToStatusID        int   `json:"to_status_id"`
	ResponsibleUserID int64 `json:"responsible_user_id"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID        int64          `json:"id"`
	UnitID    int64          `json:"unit_id"`
	ActorID   int64          `json:"actor_id"`
	ActorName string         `json:"actor_name,omitempty"`
	Text      string         `json:"text"`
	Status    StatusResponse `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func newComment(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID(),
		UnitID:    c.UnitID(),
		ActorID:   c.ActorID(),
		Text:      c.Text(),
		Status:    newStatus(c.Status()),
		CreatedAt: c.CreatedAt(),
	}
}

type UnitItemResponse struct {
	ID                int64          `json:"id"`
	Serial            string         `json:"serial"`
	Amount            int            `json:"amount"`
	Status            StatusResponse `json:"status"`
	ModelID           int64          `json:"model_id"`
	ModelName         string         `json:"model_name"`
	VendorName        string         `json:"vendor_name"`
	TypeID            int64          `json:"type_id"`
	OwnerCompanyID    int64          `json:"owner_company_id"`
	OwnerName         string         `json:"owner_name"`
	StockID           int64          `json:"stock_id"`
	StockName         string         `json:"stock_name"`
	ResponsibleUserID *int64         `json:"responsible_user_id"`
	ResponsibleName   string         `json:"responsible_name"`
	Comment           string         `json:"comment"`
	ParentID          *int64         `json:"parent_id"`
	CreatedAt         time.Time      `json:"created_at"`
}

func newUnitItem(item queries.UnitListItem) UnitItemResponse {
	return UnitItemResponse{
		ID:     item.ID,
		Serial: item.Serial,
		Amount: item.Amount,
		Status: StatusResponse{
			ID:    item.StatusID,
			Label: item.StatusLabel,
			Color: item.StatusColor,
		},
		ModelID:           item.ModelID,
		ModelName:         item.ModelName,
		VendorName:        item.VendorName,
		TypeID:            item.TypeID,
		OwnerCompanyID:    item.OwnerCompanyID,
		OwnerName:         item.OwnerName,
		StockID:           item.StockID,
		StockName:         item.StockName,
		ResponsibleUserID: item.ResponsibleUserID,
		ResponsibleName:   item.ResponsibleName,
		Comment:           item.Comment,
		ParentID:          item.ParentID,
		CreatedAt:         item.CreatedAt,
	}
}

func newUnitItems(items []queries.UnitListItem) []UnitItemResponse {
	out := make([]UnitItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, newUnitItem(item))
	}
	return out
}

type UnitCardResponse struct {
	UnitItemResponse
	ShipperCompanyID *int64 `json:"shipper_company_id"`
	ShipperName      string `json:"shipper_name"`
	PinCode          string `json:"pin_code"`
	CreatedBy        int64  `json:"created_by"`
	Version          int    `json:"version"`
	OrderID          *int64 `json:"order_id"`
	OrderComment     string `json:"order_comment"`
}

func newUnitCard(view queries.UnitView) UnitCardResponse {
	return UnitCardResponse{
		UnitItemResponse: newUnitItem(view.UnitListItem),
		ShipperCompanyID: view.ShipperCompanyID,
		ShipperName:      view.ShipperName,
		PinCode:          view.PinCode,
		CreatedBy:        view.CreatedBy,
		Version:          view.Version,
		OrderID:          view.OrderID,
		OrderComment:     view.OrderComment,
	}
}

type UnitPageResponse struct {
	Items   []UnitItemResponse `json:"items"`
	Total   int64              `json:"total"`
	Page    int                `json:"page"`
	PerPage int                `json:"per_page"`
	Pages   int                `json:"pages"`
}

type AuditEntryResponse struct {
	ID        int64     `json:"id"`
	ActorID   int64     `json:"actor_id"`
	ActorName string    `json:"actor_name"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	UnitID   int64                `json:"unit_id"`
	Entries  []AuditEntryResponse `json:"entries"`
	Comments []CommentResponse    `json:"comments"`
}

func newHistory(h queries.UnitHistory) HistoryResponse {
	out := HistoryResponse{
		UnitID:   h.UnitID,
		Entries:  make([]AuditEntryResponse, 0, len(h.Entries)),
		Comments: make([]CommentResponse, 0, len(h.Comments)),
	}
	for _, e := range h.Entries {
		out.Entries = append(out.Entries, AuditEntryResponse(e))
	}
	for _, c := range h.Comments {
		out.Comments = append(out.Comments, CommentResponse{
			ID:        c.ID,
			UnitID:    h.UnitID,
			ActorID:   c.ActorID,
			ActorName: c.ActorName,
			Text:      c.Text,
			Status:    StatusResponse{ID: c.StatusID, Label: c.StatusLabel, Color: c.StatusColor},
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}

type StatusTotalResponse struct {
	Status StatusResponse `json:"status"`
	Units  int64          `json:"units"`
	Amount int64          `json:"amount"`
}
