package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestListTicketsUseCase_Execute(t *testing.T) {
	t.Run("passes parsed filters to the repository", func(t *testing.T) {
		var captured ticket.TicketFilter
		mockRepo := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				captured = filter
				return []*ticket.Ticket{existingTicket(t)}, 1, nil
			},
		}

		uc := NewListTicketsUseCase(mockRepo)

		result, err := uc.Execute(context.Background(), ListTicketsQuery{
			Search:   "printer",
			Status:   "open",
			Priority: "high",
			Page:     2,
			PageSize: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, "printer", captured.Search)
		require.NotNil(t, captured.Status)
		assert.Equal(t, "open", captured.Status.String())
		require.NotNil(t, captured.Priority)
		assert.Equal(t, "high", captured.Priority.String())
		assert.Equal(t, 2, captured.Page)
		assert.Equal(t, int64(1), result.Total)
		assert.Len(t, result.Tickets, 1)
	})

	t.Run("clamps page and page size", func(t *testing.T) {
		var captured ticket.TicketFilter
		mockRepo := &mockTicketRepository{
			ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
				captured = filter
				return nil, 0, nil
			},
		}

		uc := NewListTicketsUseCase(mockRepo)

		_, err := uc.Execute(context.Background(), ListTicketsQuery{Page: -3, PageSize: 5000})
		require.NoError(t, err)

		assert.Equal(t, 1, captured.Page)
		assert.Equal(t, maxPageSize, captured.PageSize)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		uc := NewListTicketsUseCase(&mockTicketRepository{})

		_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "closed"})
		assert.True(t, errors.IsValidationError(err))
	})
}
