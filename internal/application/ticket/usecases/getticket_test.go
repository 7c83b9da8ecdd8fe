package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/services/markdown"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	now := time.Now()

	tk, err := ticket.ReconstructTicket(
		1, "Printer broken", "See **bold** text", "alice", "bob",
		vo.PriorityHigh, vo.StatusInProgress, now.Add(-time.Hour), now,
	)
	require.NoError(t, err)

	comment, err := ticket.ReconstructComment(5, 1, "bob", "try <script>alert(1)</script> rebooting", now)
	require.NoError(t, err)

	attachment, err := ticket.ReconstructAttachment(3, 1, "report.pdf", "tok__report.pdf", 2048, "application/pdf", now)
	require.NoError(t, err)

	event, err := ticket.ReconstructEvent(9, 1, "bob", vo.ActionStatusChange, strPtrTest("open"), strPtrTest("prog"), now)
	require.NoError(t, err)

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return tk, nil
		},
	}
	mockComments := &mockCommentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
			return []*ticket.Comment{comment}, nil
		},
	}
	mockAttachments := &mockAttachmentRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{attachment}, nil
		},
	}
	mockEvents := &mockEventRepository{
		GetByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
			return []*ticket.Event{event}, nil
		},
	}

	uc := NewGetTicketUseCase(mockRepo, mockComments, mockAttachments, mockEvents, markdown.NewService(), &mockLogger{})

	t.Run("returns full detail with rendered markdown", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 1})
		require.NoError(t, err)

		detail := result.Ticket
		assert.Equal(t, "Printer broken", detail.Title)
		assert.Equal(t, "bob", detail.Assignee)
		assert.Contains(t, detail.ContentHTML, "<strong>bold</strong>")

		require.Len(t, detail.Comments, 1)
		assert.NotContains(t, detail.Comments[0].BodyHTML, "<script>", "markup must be sanitized")
		assert.Equal(t, "try <script>alert(1)</script> rebooting", detail.Comments[0].Body, "raw body is preserved")

		require.Len(t, detail.Attachments, 1)
		assert.Equal(t, "report.pdf", detail.Attachments[0].Filename)

		require.Len(t, detail.Events, 1)
		assert.Equal(t, "status", detail.Events[0].Action)
		assert.Equal(t, "prog", *detail.Events[0].ToValue)
	})

	t.Run("unknown ticket yields not found", func(t *testing.T) {
		missingRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}

		uc := NewGetTicketUseCase(missingRepo, mockComments, mockAttachments, mockEvents, markdown.NewService(), &mockLogger{})

		_, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 404})
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func strPtrTest(s string) *string { return &s }
