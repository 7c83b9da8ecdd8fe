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

func TestCreateTicketUseCase_Execute(t *testing.T) {
	t.Run("creates ticket and records creation event", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(42)
			},
		}
		recorder := &mockRecorder{}

		uc := NewCreateTicketUseCase(mockRepo, recorder, &mockTxManager{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:     "Printer broken",
			Content:   "Paper jam on floor 3",
			Requester: "alice",
			Priority:  "high",
		})

		require.NoError(t, err)
		assert.Equal(t, uint(42), result.Ticket.ID)
		assert.Equal(t, "open", result.Ticket.Status)
		assert.Equal(t, "high", result.Ticket.Priority)

		require.Len(t, recorder.Recorded, 1)
		ev := recorder.Recorded[0]
		assert.Equal(t, uint(42), ev.TicketID)
		assert.Equal(t, "alice", ev.Actor)
		assert.Equal(t, vo.ActionCreated, ev.Action)
		assert.Nil(t, ev.FromValue)
		require.NotNil(t, ev.ToValue)
		assert.Equal(t, "high", *ev.ToValue)
	})

	t.Run("defaults priority to medium", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return tk.SetID(1)
			},
		}
		recorder := &mockRecorder{}

		uc := NewCreateTicketUseCase(mockRepo, recorder, &mockTxManager{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:     "No priority given",
			Requester: "alice",
		})

		require.NoError(t, err)
		assert.Equal(t, "med", result.Ticket.Priority)

		require.Len(t, recorder.Recorded, 1)
		require.NotNil(t, recorder.Recorded[0].ToValue)
		assert.Equal(t, "med", *recorder.Recorded[0].ToValue)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockRecorder{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:     "title",
			Requester: "alice",
			Priority:  "urgent",
		})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects missing requester", func(t *testing.T) {
		uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockRecorder{}, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateTicketCommand{Title: "title"})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("propagates save failure", func(t *testing.T) {
		mockRepo := &mockTicketRepository{
			SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return errors.NewStorageError("disk full")
			},
		}
		recorder := &mockRecorder{}

		uc := NewCreateTicketUseCase(mockRepo, recorder, &mockTxManager{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), CreateTicketCommand{
			Title:     "title",
			Requester: "alice",
		})

		assert.True(t, errors.IsStorageError(err))
		assert.Empty(t, recorder.Recorded)
	})
}
