package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
)

func existingTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Printer broken", "", "alice", vo.PriorityHigh)
	require.NoError(t, err)
	require.NoError(t, tk.SetID(1))
	return tk
}

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("records one event per changed field", func(t *testing.T) {
		tk := existingTicket(t)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		recorder := &mockRecorder{}

		uc := NewUpdateTicketUseCase(mockRepo, recorder, &mockTxManager{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 1,
			Actor:    "bob",
			Status:   strPtr("prog"),
			Assignee: strPtr("bob"),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"status", "assignee"}, result.Changed)
		assert.Equal(t, "prog", result.Ticket.Status)
		assert.Equal(t, "bob", result.Ticket.Assignee)
		assert.Equal(t, 1, mockRepo.UpdateCalls)

		require.Len(t, recorder.Recorded, 2)

		statusEv := recorder.Recorded[0]
		assert.Equal(t, vo.ActionStatusChange, statusEv.Action)
		assert.Equal(t, "bob", statusEv.Actor)
		assert.Equal(t, "open", *statusEv.FromValue)
		assert.Equal(t, "prog", *statusEv.ToValue)

		assigneeEv := recorder.Recorded[1]
		assert.Equal(t, vo.ActionAssigneeChange, assigneeEv.Action)
		assert.Nil(t, assigneeEv.FromValue, "previously unassigned")
		assert.Equal(t, "bob", *assigneeEv.ToValue)
	})

	t.Run("no-op update writes nothing", func(t *testing.T) {
		tk := existingTicket(t)
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		recorder := &mockRecorder{}

		uc := NewUpdateTicketUseCase(mockRepo, recorder, &mockTxManager{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 1,
			Actor:    "bob",
			Status:   strPtr("open"),
			Assignee: strPtr(""),
			Priority: strPtr("high"),
		})

		require.NoError(t, err)
		assert.Empty(t, result.Changed)
		assert.Empty(t, recorder.Recorded)
		assert.Zero(t, mockRepo.UpdateCalls)
	})

	t.Run("clearing assignee records nil target", func(t *testing.T) {
		tk := existingTicket(t)
		tk.Assign("bob")
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return tk, nil
			},
		}
		recorder := &mockRecorder{}

		uc := NewUpdateTicketUseCase(mockRepo, recorder, &mockTxManager{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 1,
			Actor:    "carol",
			Assignee: strPtr(""),
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"assignee"}, result.Changed)

		require.Len(t, recorder.Recorded, 1)
		assert.Equal(t, "bob", *recorder.Recorded[0].FromValue)
		assert.Nil(t, recorder.Recorded[0].ToValue)
	})

	t.Run("rejects invalid status before loading", func(t *testing.T) {
		uc := NewUpdateTicketUseCase(&mockTicketRepository{}, &mockRecorder{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 1,
			Status:   strPtr("closed"),
		})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewUpdateTicketUseCase(mockRepo, &mockRecorder{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TicketID: 99,
			Status:   strPtr("done"),
		})

		assert.True(t, errors.IsNotFoundError(err))
	})
}
