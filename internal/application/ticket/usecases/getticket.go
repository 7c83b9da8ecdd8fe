package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketResult struct {
	Ticket dto.TicketDetailDTO
}

type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	commentRepo    ticket.CommentRepository
	attachmentRepo ticket.AttachmentRepository
	eventRepo      ticket.EventRepository
	markdownSvc    markdown.Service
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	attachmentRepo ticket.AttachmentRepository,
	eventRepo ticket.EventRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		eventRepo:      eventRepo,
		markdownSvc:    markdownSvc,
		logger:         logger,
	}
}

// Execute loads the ticket with its comments, attachments, and event
// history. Ticket content and comment bodies are additionally rendered to
// sanitized HTML.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	attachments, err := uc.attachmentRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	events, err := uc.eventRepo.GetByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}

	detail := dto.TicketDetailDTO{
		TicketDTO:   toTicketDTO(t),
		Comments:    make([]dto.CommentDTO, len(comments)),
		Attachments: make([]dto.AttachmentDTO, len(attachments)),
		Events:      make([]dto.EventDTO, len(events)),
	}

	if t.Content() != "" {
		rendered, err := uc.markdownSvc.ToHTMLSanitized(t.Content())
		if err != nil {
			uc.logger.Warnw("failed to render ticket content", "ticket_id", t.ID(), "error", err)
		} else {
			detail.ContentHTML = rendered
		}
	}

	for i, c := range comments {
		commentDTO := toCommentDTO(c)
		rendered, err := uc.markdownSvc.ToHTMLSanitized(c.Body())
		if err != nil {
			uc.logger.Warnw("failed to render comment body", "comment_id", c.ID(), "error", err)
		} else {
			commentDTO.BodyHTML = rendered
		}
		detail.Comments[i] = commentDTO
	}

	for i, a := range attachments {
		detail.Attachments[i] = toAttachmentDTO(a)
	}

	for i, e := range events {
		detail.Events[i] = toEventDTO(e)
	}

	return &GetTicketResult{Ticket: detail}, nil
}
