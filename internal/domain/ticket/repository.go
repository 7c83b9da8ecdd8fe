package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
}

type TicketFilter struct {
	// Search matches against title and content.
	Search   string
	Status   *vo.Status
	Priority *vo.Priority
	Page     int
	PageSize int
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}

type AttachmentRepository interface {
	Save(ctx context.Context, attachment *Attachment) error
	GetByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
}

// EventRepository is append-only: events are never updated or deleted.
type EventRepository interface {
	Append(ctx context.Context, event *Event) error
	// GetByTicketID returns events most recent first.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Event, error)
}
