package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	TicketID uint
	// Author is optional; empty falls back to the default actor.
	Author string
	Body   string
}

type AddCommentResult struct {
	Comment dto.CommentDTO
}

type AddCommentUseCase struct {
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	recorder    EventRecorder
	txManager   TransactionManager
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	recorder EventRecorder,
	txManager TransactionManager,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		recorder:    recorder,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute appends a comment, bumps the ticket's update timestamp, and
// records the comment event, all in one transaction.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Body == "" {
		return nil, errors.NewValidationError("comment body is required")
	}

	author := actorOrDefault(cmd.Author)

	var comment *ticket.Comment
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		comment, err = ticket.NewComment(t.ID(), author, cmd.Body)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.commentRepo.Save(txCtx, comment); err != nil {
			return err
		}

		t.Touch()
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		return uc.recorder.Record(txCtx, t.ID(), author, vo.ActionCommentAdded, nil, nil)
	})
	if err != nil {
		uc.logger.Errorw("failed to add comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", cmd.TicketID, "comment_id", comment.ID())

	return &AddCommentResult{Comment: toCommentDTO(comment)}, nil
}
