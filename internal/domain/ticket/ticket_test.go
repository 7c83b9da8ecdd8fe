package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

func TestNewTicket(t *testing.T) {
	t.Run("creates open ticket with given fields", func(t *testing.T) {
		tk, err := NewTicket("Printer broken", "The 3rd floor printer jams", "alice", vo.PriorityHigh)
		require.NoError(t, err)

		assert.Equal(t, "Printer broken", tk.Title())
		assert.Equal(t, "The 3rd floor printer jams", tk.Content())
		assert.Equal(t, "alice", tk.Requester())
		assert.Equal(t, vo.PriorityHigh, tk.Priority())
		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Empty(t, tk.Assignee())
		assert.False(t, tk.CreatedAt().IsZero())
		assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := NewTicket("", "body", "alice", vo.PriorityMedium)
		assert.Error(t, err)
	})

	t.Run("rejects title over 200 characters", func(t *testing.T) {
		_, err := NewTicket(strings.Repeat("x", 201), "body", "alice", vo.PriorityMedium)
		assert.Error(t, err)
	})

	t.Run("accepts title of exactly 200 characters", func(t *testing.T) {
		_, err := NewTicket(strings.Repeat("x", 200), "body", "alice", vo.PriorityMedium)
		assert.NoError(t, err)
	})

	t.Run("rejects empty requester", func(t *testing.T) {
		_, err := NewTicket("title", "body", "", vo.PriorityMedium)
		assert.Error(t, err)
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		_, err := NewTicket("title", "body", "alice", vo.Priority("urgent"))
		assert.Error(t, err)
	})
}

func TestTicket_ChangeStatus(t *testing.T) {
	newTestTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket("title", "", "alice", vo.PriorityMedium)
		require.NoError(t, err)
		return tk
	}

	t.Run("transition reports change", func(t *testing.T) {
		tk := newTestTicket(t)

		changed, err := tk.ChangeStatus(vo.StatusInProgress)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, vo.StatusInProgress, tk.Status())
	})

	t.Run("setting current status is a no-op", func(t *testing.T) {
		tk := newTestTicket(t)
		before := tk.UpdatedAt()

		changed, err := tk.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, before, tk.UpdatedAt())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		tk := newTestTicket(t)

		_, err := tk.ChangeStatus(vo.Status("closed"))
		assert.Error(t, err)
	})
}

func TestTicket_Assign(t *testing.T) {
	newTestTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket("title", "", "alice", vo.PriorityMedium)
		require.NoError(t, err)
		return tk
	}

	t.Run("assigning reports change", func(t *testing.T) {
		tk := newTestTicket(t)

		assert.True(t, tk.Assign("bob"))
		assert.Equal(t, "bob", tk.Assignee())
	})

	t.Run("reassigning same person is a no-op", func(t *testing.T) {
		tk := newTestTicket(t)
		tk.Assign("bob")

		assert.False(t, tk.Assign("bob"))
	})

	t.Run("clearing an unassigned ticket is a no-op", func(t *testing.T) {
		tk := newTestTicket(t)

		assert.False(t, tk.Assign(""))
	})

	t.Run("clearing an assigned ticket reports change", func(t *testing.T) {
		tk := newTestTicket(t)
		tk.Assign("bob")

		assert.True(t, tk.Assign(""))
		assert.Empty(t, tk.Assignee())
	})
}

func TestTicket_ChangePriority(t *testing.T) {
	tk, err := NewTicket("title", "", "alice", vo.PriorityMedium)
	require.NoError(t, err)

	changed, err := tk.ChangePriority(vo.PriorityCritical)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, vo.PriorityCritical, tk.Priority())

	changed, err = tk.ChangePriority(vo.PriorityCritical)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = tk.ChangePriority(vo.Priority("urgent"))
	assert.Error(t, err)
}

func TestTicket_Touch(t *testing.T) {
	tk, err := NewTicket("title", "", "alice", vo.PriorityMedium)
	require.NoError(t, err)

	before := tk.UpdatedAt()
	time.Sleep(2 * time.Millisecond)
	tk.Touch()

	assert.True(t, tk.UpdatedAt().After(before))
	assert.Equal(t, before, tk.CreatedAt())
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("title", "", "alice", vo.PriorityMedium)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(7))
	assert.Equal(t, uint(7), tk.ID())

	assert.Error(t, tk.SetID(8), "ID must not be reassignable")
	assert.Error(t, (&Ticket{}).SetID(0))
}
