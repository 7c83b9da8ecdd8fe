package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand carries partial updates. Nil fields are left
// untouched; a non-nil empty Assignee clears the assignment.
type UpdateTicketCommand struct {
	TicketID uint
	Actor    string
	Status   *string
	Assignee *string
	Priority *string
}

type UpdateTicketResult struct {
	Ticket dto.TicketDTO
	// Changed lists the actions recorded by this update, in apply order.
	Changed []string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	recorder   EventRecorder
	txManager  TransactionManager
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	recorder EventRecorder,
	txManager TransactionManager,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		recorder:   recorder,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute applies the requested field changes and records one audit event
// per field that actually changed. Setting a field to its current value
// produces no event. When nothing changes, no row is written at all.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var newStatus *vo.Status
	if cmd.Status != nil {
		s, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", err.Error())
		}
		newStatus = &s
	}

	var newPriority *vo.Priority
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		newPriority = &p
	}

	type fieldChange struct {
		action   vo.Action
		from, to *string
	}

	var (
		t       *ticket.Ticket
		changes []fieldChange
	)

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		t, err = uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if newStatus != nil {
			from := t.Status().String()
			changed, err := t.ChangeStatus(*newStatus)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if changed {
				changes = append(changes, fieldChange{
					action: vo.ActionStatusChange,
					from:   optStr(from),
					to:     optStr(newStatus.String()),
				})
			}
		}

		if cmd.Assignee != nil {
			from := t.Assignee()
			if t.Assign(*cmd.Assignee) {
				changes = append(changes, fieldChange{
					action: vo.ActionAssigneeChange,
					from:   optStr(from),
					to:     optStr(*cmd.Assignee),
				})
			}
		}

		if newPriority != nil {
			from := t.Priority().String()
			changed, err := t.ChangePriority(*newPriority)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if changed {
				changes = append(changes, fieldChange{
					action: vo.ActionPriorityChange,
					from:   optStr(from),
					to:     optStr(newPriority.String()),
				})
			}
		}

		if len(changes) == 0 {
			return nil
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		for _, ch := range changes {
			if err := uc.recorder.Record(txCtx, t.ID(), cmd.Actor, ch.action, ch.from, ch.to); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	changed := make([]string, len(changes))
	for i, ch := range changes {
		changed[i] = ch.action.String()
	}

	if len(changed) > 0 {
		uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "changed", changed)
	}

	return &UpdateTicketResult{
		Ticket:  toTicketDTO(t),
		Changed: changed,
	}, nil
}
