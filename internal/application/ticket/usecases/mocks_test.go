package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	UpdateCalls int
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.UpdateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCommentRepository struct {
	SaveFunc          func(ctx context.Context, comment *ticket.Comment) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Save(ctx context.Context, comment *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, comment)
	}
	return nil
}

func (m *mockCommentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveFunc          func(ctx context.Context, attachment *ticket.Attachment) error
	GetByIDFunc       func(ctx context.Context, attachmentID uint) (*ticket.Attachment, error)
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockEventRepository struct {
	AppendFunc        func(ctx context.Context, event *ticket.Event) error
	GetByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Event, error)
}

func (m *mockEventRepository) Append(ctx context.Context, event *ticket.Event) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, event)
	}
	return nil
}

func (m *mockEventRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
	if m.GetByTicketIDFunc != nil {
		return m.GetByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

// recordedEvent captures one Record call for assertions.
type recordedEvent struct {
	TicketID  uint
	Actor     string
	Action    vo.Action
	FromValue *string
	ToValue   *string
}

type mockRecorder struct {
	RecordFunc func(ctx context.Context, ticketID uint, actor string, action vo.Action, fromValue, toValue *string) error
	Recorded   []recordedEvent
}

func (m *mockRecorder) Record(ctx context.Context, ticketID uint, actor string, action vo.Action, fromValue, toValue *string) error {
	m.Recorded = append(m.Recorded, recordedEvent{
		TicketID:  ticketID,
		Actor:     actor,
		Action:    action,
		FromValue: fromValue,
		ToValue:   toValue,
	})
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, ticketID, actor, action, fromValue, toValue)
	}
	return nil
}

// mockTxManager runs the callback directly, without a real transaction.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockFileStore struct {
	SaveFunc    func(ticketID uint, originalName string, r io.Reader) (string, string, int64, error)
	ResolveFunc func(ticketID uint, storedName string) (string, error)
	RemoveFunc  func(ticketID uint, storedName string) error
	Removed     []string
}

func (m *mockFileStore) Save(ticketID uint, originalName string, r io.Reader) (string, string, int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ticketID, originalName, r)
	}
	return "tok__" + originalName, originalName, 0, nil
}

func (m *mockFileStore) Resolve(ticketID uint, storedName string) (string, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ticketID, storedName)
	}
	return "/tmp/" + storedName, nil
}

func (m *mockFileStore) Remove(ticketID uint, storedName string) error {
	m.Removed = append(m.Removed, storedName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ticketID, storedName)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
