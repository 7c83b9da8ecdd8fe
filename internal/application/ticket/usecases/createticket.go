package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title     string
	Content   string
	Requester string
	// Priority is optional; empty means medium.
	Priority string
}

type CreateTicketResult struct {
	Ticket dto.TicketDTO
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	recorder   EventRecorder
	txManager  TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	recorder EventRecorder,
	txManager TransactionManager,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute creates a ticket and records its creation event in one
// transaction. New tickets always start open. The creation event carries
// the initial priority as its new value so the event log replays to the
// ticket's current state even when no later change touched the field.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		priority = p
	}

	t, err := ticket.NewTicket(cmd.Title, cmd.Content, cmd.Requester, priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, t); err != nil {
			return err
		}
		return uc.recorder.Record(txCtx, t.ID(), t.Requester(), vo.ActionCreated, nil, optStr(t.Priority().String()))
	})
	if err != nil {
		uc.logger.Errorw("failed to create ticket", "title", cmd.Title, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"requester", t.Requester(),
		"priority", t.Priority().String(),
	)

	return &CreateTicketResult{Ticket: toTicketDTO(t)}, nil
}
