package usecases

import (
	"context"
	"io"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

// TransactionManager runs fn inside a database transaction. Repository
// calls made with the context fn receives join that transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventRecorder appends audit events. Implementations must never update
// or delete previously recorded events.
type EventRecorder interface {
	Record(ctx context.Context, ticketID uint, actor string, action vo.Action, fromValue, toValue *string) error
}

// FileStore persists attachment bytes outside the database.
type FileStore interface {
	Save(ticketID uint, originalName string, r io.Reader) (storedName, safeName string, size int64, err error)
	Resolve(ticketID uint, storedName string) (string, error)
	Remove(ticketID uint, storedName string) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type GetAttachmentFileExecutor interface {
	Execute(ctx context.Context, query GetAttachmentFileQuery) (*GetAttachmentFileResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListEventsExecutor interface {
	Execute(ctx context.Context, query ListEventsQuery) (*ListEventsResult, error)
}
