package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between domain entities and persistence models.
type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:        t.ID(),
		Title:     t.Title(),
		Requester: t.Requester(),
		Priority:  t.Priority().String(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt().UnixMilli(),
		UpdatedAt: t.UpdatedAt().UnixMilli(),
	}

	if content := t.Content(); content != "" {
		model.Content = &content
	}
	if assignee := t.Assignee(); assignee != "" {
		model.Assignee = &assignee
	}

	return model
}

func (TicketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	// Rows backfilled by the reconciler may carry defaults or nulls in the
	// added columns; absent values map onto the entity's zero states.
	priority := vo.Priority(m.Priority)
	if m.Priority == "" {
		priority = vo.PriorityMedium
	}
	status := vo.Status(m.Status)
	if m.Status == "" {
		status = vo.StatusOpen
	}

	return ticket.ReconstructTicket(
		m.ID,
		m.Title,
		deref(m.Content),
		m.Requester,
		deref(m.Assignee),
		priority,
		status,
		fromMillis(m.CreatedAt),
		fromMillis(m.UpdatedAt),
	)
}

func (TicketMapper) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt().UnixMilli(),
	}
}

func (TicketMapper) CommentToDomain(m *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(m.ID, m.TicketID, m.Author, m.Body, fromMillis(m.CreatedAt))
}

func (TicketMapper) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	model := &models.AttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		Filename:   a.Filename(),
		StoredName: a.StoredName(),
		Size:       a.Size(),
		CreatedAt:  a.CreatedAt().UnixMilli(),
	}

	if mimeType := a.MimeType(); mimeType != "" {
		model.MimeType = &mimeType
	}

	return model
}

func (TicketMapper) AttachmentToDomain(m *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(
		m.ID,
		m.TicketID,
		m.Filename,
		m.StoredName,
		m.Size,
		deref(m.MimeType),
		fromMillis(m.CreatedAt),
	)
}

func (TicketMapper) EventToModel(e *ticket.Event) *models.EventModel {
	return &models.EventModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Actor:     e.Actor(),
		Action:    e.Action().String(),
		FromValue: e.FromValue(),
		ToValue:   e.ToValue(),
		CreatedAt: e.CreatedAt().UnixMilli(),
	}
}

func (TicketMapper) EventToDomain(m *models.EventModel) (*ticket.Event, error) {
	return ticket.ReconstructEvent(
		m.ID,
		m.TicketID,
		m.Actor,
		vo.Action(m.Action),
		m.FromValue,
		m.ToValue,
		fromMillis(m.CreatedAt),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fromMillis tolerates absent timestamps on rows that predate the column.
func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
