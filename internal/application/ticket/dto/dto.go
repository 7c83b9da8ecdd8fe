package dto

import "time"

type TicketDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	Requester string    `json:"requester"`
	Assignee  string    `json:"assignee,omitempty"`
	Priority  string    `json:"priority"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Filename  string    `json:"filename"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type EventDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	FromValue *string   `json:"from_value"`
	ToValue   *string   `json:"to_value"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketDetailDTO is the full detail view: the ticket with its rendered
// content and all child records, events most recent first.
type TicketDetailDTO struct {
	TicketDTO
	ContentHTML string          `json:"content_html,omitempty"`
	Comments    []CommentDTO    `json:"comments"`
	Attachments []AttachmentDTO `json:"attachments"`
	Events      []EventDTO      `json:"events"`
}

// AttachmentFileDTO locates an attachment's bytes for download.
type AttachmentFileDTO struct {
	Path     string
	Filename string
	MimeType string
}
