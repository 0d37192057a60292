package commands

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/domain/model/comment"
)

// AddCommentCommandHandler attaches a free-text comment to a unit, bound to
// the unit's current status.
type AddCommentCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
	clock      func() time.Time
}

func NewAddCommentCommandHandler(uowFactory UoWFactory, logger *slog.Logger) AddCommentCommandHandler {
	return AddCommentCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "add_comment"),
		clock:      time.Now,
	}
}

func (h *AddCommentCommandHandler) Handle(ctx context.Context, cmd AddCommentCommand) (*comment.Comment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	u, err := uow.UnitRepository().Get(ctx, cmd.UnitID())
	if err != nil {
		return nil, err
	}

	c, err := comment.NewComment(u.ID(), cmd.ActorID(), cmd.Text(), u.Status(), h.clock())
	if err != nil {
		return nil, err
	}
	if err = uow.CommentRepository().Add(ctx, c); err != nil {
		h.logger.ErrorContext(ctx, "failed to save comment", "unit_id", u.ID(), "error", err)
		return nil, err
	}
	return c, nil
}
