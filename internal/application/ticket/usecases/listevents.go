package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

type ListEventsQuery struct {
	TicketID uint
}

type ListEventsResult struct {
	Events []dto.EventDTO
}

type ListEventsUseCase struct {
	ticketRepo ticket.TicketRepository
	eventRepo  ticket.EventRepository
}

func NewListEventsUseCase(
	ticketRepo ticket.TicketRepository,
	eventRepo ticket.EventRepository,
) *ListEventsUseCase {
	return &ListEventsUseCase{
		ticketRepo: ticketRepo,
		eventRepo:  eventRepo,
	}
}

// Execute returns the ticket's audit history, most recent first.
func (uc *ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, err
	}

	events, err := uc.eventRepo.GetByTicketID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	result := &ListEventsResult{
		Events: make([]dto.EventDTO, len(events)),
	}
	for i, e := range events {
		result.Events[i] = toEventDTO(e)
	}

	return result, nil
}
