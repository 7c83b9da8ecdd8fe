package usecases

import (
	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
)

func toTicketDTO(t *ticket.Ticket) dto.TicketDTO {
	return dto.TicketDTO{
		ID:        t.ID(),
		Title:     t.Title(),
		Content:   t.Content(),
		Requester: t.Requester(),
		Assignee:  t.Assignee(),
		Priority:  t.Priority().String(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		UpdatedAt: t.UpdatedAt(),
	}
}

func toCommentDTO(c *ticket.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		Author:    c.Author(),
		Body:      c.Body(),
		CreatedAt: c.CreatedAt(),
	}
}

func toAttachmentDTO(a *ticket.Attachment) dto.AttachmentDTO {
	return dto.AttachmentDTO{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		Filename:  a.Filename(),
		Size:      a.Size(),
		MimeType:  a.MimeType(),
		CreatedAt: a.CreatedAt(),
	}
}

func toEventDTO(e *ticket.Event) dto.EventDTO {
	return dto.EventDTO{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Actor:     e.Actor(),
		Action:    e.Action().String(),
		FromValue: e.FromValue(),
		ToValue:   e.ToValue(),
		CreatedAt: e.CreatedAt(),
	}
}
