package commands

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/comment"
	"warehouse/internal/core/ports"
)

// RecordStatusChangeCommandHandler writes a comment naming both statuses with
// their colour hints and the responsible user. The comment carries the new
// status.
type RecordStatusChangeCommandHandler struct {
	uowFactory UoWFactory
	refs       ports.ReferenceRepository
	logger     *slog.Logger
	clock      func() time.Time
}

func NewRecordStatusChangeCommandHandler(
	uowFactory UoWFactory,
	refs ports.ReferenceRepository,
	logger *slog.Logger,
) RecordStatusChangeCommandHandler {
	return RecordStatusChangeCommandHandler{
		uowFactory: uowFactory,
		refs:       refs,
		logger:     logger.With("component", "status_comment"),
		clock:      time.Now,
	}
}

func (h *RecordStatusChangeCommandHandler) Handle(ctx context.Context, cmd RecordStatusChangeCommand) (Result, error) {
	if err := cmd.Validate(); err != nil {
		return Result{}, err
	}

	result := NewResult()

	var responsible string
	if cmd.ResponsibleID() > 0 {
		name, err := h.refs.UserShortName(ctx, cmd.ResponsibleID())
		if err != nil {
			h.logger.WarnContext(ctx, "responsible lookup failed", "user_id", cmd.ResponsibleID(), "error", err)
		}
		responsible = name
	}

	text := comment.StatusChangeText(cmd.From(), cmd.To(), responsible)
	c, err := comment.NewComment(cmd.UnitID(), cmd.ActorID(), text, cmd.To(), h.clock())
	if err == nil {
		err = h.uowFactory.Create().CommentRepository().Add(ctx, c)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save status comment", "unit_id", cmd.UnitID(), "error", err)
		result.Fail(MsgCommentFailed)
	}
	return result, nil
}
