package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
)

func TestRecorder_Record(t *testing.T) {
	t.Run("appends event with given transition", func(t *testing.T) {
		var appended *ticket.Event
		mockEvents := &mockEventRepository{
			AppendFunc: func(ctx context.Context, e *ticket.Event) error {
				appended = e
				return nil
			},
		}

		r := NewRecorder(mockEvents)

		from, to := "open", "done"
		err := r.Record(context.Background(), 1, "alice", vo.ActionStatusChange, &from, &to)
		require.NoError(t, err)

		require.NotNil(t, appended)
		assert.Equal(t, uint(1), appended.TicketID())
		assert.Equal(t, "alice", appended.Actor())
		assert.Equal(t, "open", *appended.FromValue())
		assert.Equal(t, "done", *appended.ToValue())
	})

	t.Run("empty actor falls back to default", func(t *testing.T) {
		var appended *ticket.Event
		mockEvents := &mockEventRepository{
			AppendFunc: func(ctx context.Context, e *ticket.Event) error {
				appended = e
				return nil
			},
		}

		r := NewRecorder(mockEvents)

		err := r.Record(context.Background(), 1, "", vo.ActionCommentAdded, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, defaultActor, appended.Actor())
	})
}
