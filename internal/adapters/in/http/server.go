package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/comment"
	"warehouse/internal/core/domain/model/unit"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type (
	UnitSaver interface {
		Handle(ctx context.Context, cmd commands.SaveUnitCommand) (*unit.Unit, error)
	}
	UnitMover interface {
		Handle(ctx context.Context, cmd commands.MoveUnitCommand) (commands.Result, error)
	}
	UnitDeleter interface {
		Handle(ctx context.Context, cmd commands.DeleteUnitCommand) (commands.Result, error)
	}
	StatusChangeRecorder interface {
		Handle(ctx context.Context, cmd commands.RecordStatusChangeCommand) (commands.Result, error)
	}
	CommentAdder interface {
		Handle(ctx context.Context, cmd commands.AddCommentCommand) (*comment.Comment, error)
	}
	OrderAssigner interface {
		Handle(ctx context.Context, cmd commands.AssignUnitToOrderCommand) (commands.Result, error)
	}
	StatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeUnitStatusCommand) (commands.Result, error)
	}

	UnitLister interface {
		Handle(ctx context.Context, query queries.ListUnitsQuery) (queries.ListUnitsResponse, error)
	}
	UnitExporter interface {
		All(ctx context.Context, query queries.ListUnitsQuery) ([]queries.UnitListItem, error)
	}
	UnitGetter interface {
		Handle(ctx context.Context, query queries.GetUnitQuery) (queries.UnitView, error)
	}
	HistoryGetter interface {
		Handle(ctx context.Context, query queries.GetUnitHistoryQuery) (queries.UnitHistory, error)
	}
	StatusLister interface {
		Handle(ctx context.Context, query queries.ListAvailableStatusesQuery) ([]queries.StatusView, error)
	}
	SerialSearcher interface {
		Handle(ctx context.Context, query queries.SearchBySerialQuery) ([]queries.UnitListItem, error)
	}
	ConsumablesLister interface {
		Held(ctx context.Context, query queries.ListConsumablesQuery) ([]queries.UnitListItem, error)
		ForOrder(ctx context.Context, query queries.ListOrderConsumablesQuery) ([]queries.UnitListItem, error)
	}
	StockSummarizer interface {
		Handle(ctx context.Context, query queries.GetStockSummaryQuery) ([]queries.StatusTotal, error)
	}
)

// Handlers bundles the use cases the server exposes.
type Handlers struct {
	SaveUnit           UnitSaver
	MoveUnit           UnitMover
	DeleteUnit         UnitDeleter
	RecordStatusChange StatusChangeRecorder
	AddComment         CommentAdder
	AssignToOrder      OrderAssigner
	ChangeStatus       StatusChanger

	ListUnits       UnitLister
	ExportUnits     UnitExporter
	GetUnit         UnitGetter
	GetHistory      HistoryGetter
	ListStatuses    StatusLister
	SearchBySerial  SerialSearcher
	Consumables     ConsumablesLister
	GetStockSummary StockSummarizer
}

// Server maps HTTP requests onto commands and queries.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{h: h, logger: logger}
}

// RegisterRoutes mounts every endpoint on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/statuses", s.ListStatuses)
	api.GET("/units", s.ListUnits)
	api.POST("/units", s.CreateUnit)
	api.GET("/units/:id", s.GetUnit)
	api.PUT("/units/:id", s.UpdateUnit)
	api.DELETE("/units/:id", s.DeleteUnit)
	api.POST("/units/:id/move", s.MoveUnit)
	api.POST("/units/:id/order", s.AssignUnitToOrder)
	api.POST("/units/:id/status", s.ChangeUnitStatus)
	api.POST("/units/:id/status-comments", s.RecordStatusChange)
	api.POST("/units/:id/comments", s.AddComment)
	api.GET("/units/:id/history", s.GetUnitHistory)
	api.GET("/units/:id/statuses", s.ListUnitStatuses)
	api.GET("/serial-search", s.SearchBySerial)
	api.GET("/consumables", s.ListConsumables)
	api.GET("/orders/:id/consumables", s.ListOrderConsumables)
	api.GET("/stock-summary", s.GetStockSummary)
	api.GET("/exports/units", s.ExportUnits)
}

func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// ListStatuses handles GET /api/v1/statuses.
func (s *Server) ListStatuses(c echo.Context) error {
	return s.statuses(c, 0)
}

// ListUnitStatuses handles GET /api/v1/units/{id}/statuses.
func (s *Server) ListUnitStatuses(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.statuses(c, id)
}

func (s *Server) statuses(c echo.Context, unitID int64) error {
	query, err := queries.NewListAvailableStatusesQuery(unitID)
	if err != nil {
		return s.fail(c, err)
	}
	views, err := s.h.ListStatuses.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]StatusResponse, 0, len(views))
	for _, v := range views {
		out = append(out, StatusResponse(v))
	}
	return c.JSON(http.StatusOK, out)
}

// ListUnits handles GET /api/v1/units. Filters are applied in query string order.
func (s *Server) ListUnits(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	res, err := s.h.ListUnits.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, UnitPageResponse{
		Items:   newUnitItems(res.Items),
		Total:   res.Total,
		Page:    res.Page,
		PerPage: res.PerPage,
		Pages:   res.Pages,
	})
}

// ExportUnits handles GET /api/v1/exports/units: the filtered listing as an
// XLSX workbook, without paging.
func (s *Server) ExportUnits(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return badRequest(c, err)
	}
	found, err := s.h.ExportUnits.All(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	workbook, err := unitsWorkbook(found)
	if err != nil {
		return s.fail(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFileName))
	return c.Blob(http.StatusOK, mimeXLSX, workbook)
}

func listQuery(c echo.Context) (queries.ListUnitsQuery, error) {
	var (
		page  int
		sort  string
		order string
	)
	params := c.QueryParams()
	if err := runtime.BindQueryParameter("form", true, false, "page", params, &page); err != nil {
		return queries.ListUnitsQuery{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "sort", params, &sort); err != nil {
		return queries.ListUnitsQuery{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "order", params, &order); err != nil {
		return queries.ListUnitsQuery{}, err
	}
	return queries.NewListUnitsQuery(listFilters(c.Request().URL.RawQuery), sort, order == "desc", page), nil
}

// CreateUnit handles POST /api/v1/units.
func (s *Server) CreateUnit(c echo.Context) error {
	return s.save(c, 0, http.StatusCreated)
}

// UpdateUnit handles PUT /api/v1/units/{id}.
func (s *Server) UpdateUnit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return s.save(c, id, http.StatusOK)
}

func (s *Server) save(c echo.Context, id int64, okStatus int) error {
	var body UnitRequest
	if err := c.Bind(&body); err != nil {
		return badRequest(c, err)
	}

	cmd, err := commands.NewSaveUnitCommand(body.toDomain(id), actorID(c))
	if err != nil {
		return s.fail(c, err)
	}
	u, err := s.h.SaveUnit.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(okStatus, SavedUnitResponse{
		ResultResponse: newResult(commands.NewResult()),
		ID:             u.ID(),
	})
}

// GetUnit handles GET /api/v1/units/{id}.
func (s *Server) GetUnit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetUnitQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	view, err := s.h.GetUnit.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUnitCard(view))
}

// DeleteUnit handles DELETE /api/v1/units/{id}.
func (s *Server) DeleteUnit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteUnitCommand(id, actorID(c))
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.DeleteUnit.Handle(c.Request().Context(), cmd)
	return s.result(c, res, err)
}

// MoveUnit handles POST /api/v1/units/{id}/move.
func (s *Server) MoveUnit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body UnitRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewMoveUnitCommand(id, body.toDomain(id), actorID(c))
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.MoveUnit.Handle(c.Request().Context(), cmd)
	return s.result(c, res, err)
}

// AssignUnitToOrder handles POST /api/v1/units/{id}/order.
func (s *Server) AssignUnitToOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body OrderLinkRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewAssignUnitToOrderCommand(id, body.OrderID, body.Comment, actorID(c))
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.AssignToOrder.Handle(c.Request().Context(), cmd)
	return s.result(c, res, err)
}

// ChangeUnitStatus handles POST /api/v1/units/{id}/status.
func (s *Server) ChangeUnitStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body StatusChangeRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewChangeUnitStatusCommand(id, unit.Status(body.StatusID), body.ResponsibleUserID, actorID(c))
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.ChangeStatus.Handle(c.Request().Context(), cmd)
	return s.result(c, res, err)
}

// RecordStatusChange handles POST /api/v1/units/{id}/status-comments.
func (s *Server) RecordStatusChange(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body StatusCommentRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewRecordStatusChangeCommand(
		id,
		unit.Status(body.FromStatusID),
		unit.Status(body.ToStatusID),
		body.ResponsibleUserID,
		actorID(c),
	)
	if err != nil {
		return s.fail(c, err)
	}
	res, err := s.h.RecordStatusChange.Handle(c.Request().Context(), cmd)
	return s.result(c, res, err)
}

// AddComment handles POST /api/v1/units/{id}/comments.
func (s *Server) AddComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var body CommentRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, err)
	}
	cmd, err := commands.NewAddCommentCommand(id, body.Text, actorID(c))
	if err != nil {
		return s.fail(c, err)
	}
	cm, err := s.h.AddComment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, newComment(cm))
}

// GetUnitHistory handles GET /api/v1/units/{id}/history.
func (s *Server) GetUnitHistory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewGetUnitHistoryQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	history, err := s.h.GetHistory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newHistory(history))
}

// SearchBySerial handles GET /api/v1/serial-search.
func (s *Server) SearchBySerial(c echo.Context) error {
	var (
		serial        string
		statusID      int
		responsibleID int64
	)
	params := c.QueryParams()
	if err := runtime.BindQueryParameter("form", true, true, "serial", params, &serial); err != nil {
		return badRequest(c, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "status_id", params, &statusID); err != nil {
		return badRequest(c, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "responsible_id", params, &responsibleID); err != nil {
		return badRequest(c, err)
	}

	query, err := queries.NewSearchBySerialQuery(serial, unit.Status(statusID), responsibleID)
	if err != nil {
		return s.fail(c, err)
	}
	found, err := s.h.SearchBySerial.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUnitItems(found))
}

// ListConsumables handles GET /api/v1/consumables.
func (s *Server) ListConsumables(c echo.Context) error {
	var responsibleID int64
	if err := runtime.BindQueryParameter("form", true, true, "responsible_id", c.QueryParams(), &responsibleID); err != nil {
		return badRequest(c, err)
	}
	query, err := queries.NewListConsumablesQuery(responsibleID)
	if err != nil {
		return s.fail(c, err)
	}
	held, err := s.h.Consumables.Held(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUnitItems(held))
}

// ListOrderConsumables handles GET /api/v1/orders/{id}/consumables.
func (s *Server) ListOrderConsumables(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListOrderConsumablesQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	installed, err := s.h.Consumables.ForOrder(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, newUnitItems(installed))
}

// GetStockSummary handles GET /api/v1/stock-summary.
func (s *Server) GetStockSummary(c echo.Context) error {
	var stockID int64
	if err := runtime.BindQueryParameter("form", true, false, "stock_id", c.QueryParams(), &stockID); err != nil {
		return badRequest(c, err)
	}
	totals, err := s.h.GetStockSummary.Handle(c.Request().Context(), queries.NewGetStockSummaryQuery(stockID))
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]StatusTotalResponse, 0, len(totals))
	for _, t := range totals {
		out = append(out, StatusTotalResponse{
			Status: newStatus(unit.Status(t.StatusID)),
			Units:  t.Units,
			Amount: t.Amount,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// result writes a command Result. A failed result is reported with the
// status that best matches its first message.
func (s *Server) result(c echo.Context, res commands.Result, err error) error {
	if err != nil {
		return s.fail(c, err)
	}
	status := resultStatus(res)
	if !res.OK() {
		s.logger.WarnContext(c.Request().Context(), "command rejected",
			"path", c.Path(), "status", status, "messages", res.Text())
	}
	return c.JSON(status, newResult(res))
}

func resultStatus(res commands.Result) int {
	if res.OK() {
		return http.StatusOK
	}
	if len(res.Messages) == 0 {
		return http.StatusInternalServerError
	}
	switch res.Messages[0] {
	case commands.MsgUnitNotFound:
		return http.StatusNotFound
	case commands.MsgSaveFailed,
		commands.MsgDeleteFailed,
		commands.MsgCommentFailed,
		commands.MsgOrderLinkFailed,
		commands.MsgStatusNotChanged:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// fail maps a use case error onto a response.
func (s *Server) fail(c echo.Context, err error) error {
	if verr, ok := errs.AsValidationError(err); ok {
		res := commands.NewResult()
		res.Fail(verr.Messages()...)
		return c.JSON(http.StatusUnprocessableEntity, newResult(res))
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, newError(http.StatusNotFound, err.Error()))
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return c.JSON(http.StatusConflict, newError(http.StatusConflict, err.Error()))
	case errors.Is(err, commands.ErrActorIsRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, err.Error()))
	}

	s.logger.ErrorContext(c.Request().Context(), "request failed",
		"method", c.Request().Method, "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, newError(http.StatusInternalServerError, "internal server error"))
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, err.Error()))
}

// pathID binds the {id} path parameter. The error is an *echo.HTTPError
// carrying a 400 ErrorResponse.
func pathID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, newError(http.StatusBadRequest, err.Error()))
	}
	return id, nil
}

var reservedListParams = map[string]bool{"page": true, "sort": true, "order": true}

// listFilters keeps the query string order, which decides the filter order.
func listFilters(rawQuery string) []queries.Filter {
	var filters []queries.Filter
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil || reservedListParams[key] {
			continue
		}
		if value, err = url.QueryUnescape(value); err != nil {
			continue
		}
		filters = append(filters, queries.Filter{Field: key, Value: value})
	}
	return filters
}
