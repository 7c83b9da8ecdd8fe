package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ListTicketsQuery struct {
	// Search matches against title and content, case handling per the
	// database collation.
	Search   string
	Status   string
	Priority string
	Page     int
	PageSize int
}

type ListTicketsResult struct {
	Tickets  []dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo}
}

// Execute lists tickets most recently updated first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.Status != "" {
		s, err := vo.NewStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status", err.Error())
		}
		filter.Status = &s
	}

	if query.Priority != "" {
		p, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority", err.Error())
		}
		filter.Priority = &p
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := &ListTicketsResult{
		Tickets:  make([]dto.TicketDTO, len(tickets)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	for i, t := range tickets {
		result.Tickets[i] = toTicketDTO(t)
	}

	return result, nil
}
