package usecases

import (
	"context"
	"io"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AddAttachmentCommand struct {
	TicketID uint
	// Actor is optional; empty falls back to the default actor.
	Actor    string
	Filename string
	Content  io.Reader
	MimeType string
}

type AddAttachmentResult struct {
	Attachment dto.AttachmentDTO
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	recorder       EventRecorder
	fileStore      FileStore
	txManager      TransactionManager
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	recorder EventRecorder,
	fileStore FileStore,
	txManager TransactionManager,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		recorder:       recorder,
		fileStore:      fileStore,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute stores the uploaded bytes, then writes the attachment row, the
// ticket timestamp bump, and the audit event in one transaction. If the
// transaction fails the stored file is removed again.
func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.Filename == "" {
		return nil, errors.NewValidationError("filename is required")
	}
	if cmd.Content == nil {
		return nil, errors.NewValidationError("attachment content is required")
	}

	// Reject unknown tickets before any bytes hit the disk.
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	storedName, safeName, size, err := uc.fileStore.Save(cmd.TicketID, cmd.Filename, cmd.Content)
	if err != nil {
		return nil, errors.NewStorageError("failed to store attachment file", err.Error())
	}

	actor := actorOrDefault(cmd.Actor)

	var attachment *ticket.Attachment
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		attachment, err = ticket.NewAttachment(t.ID(), safeName, storedName, size, cmd.MimeType)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.attachmentRepo.Save(txCtx, attachment); err != nil {
			return err
		}

		t.Touch()
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		return uc.recorder.Record(txCtx, t.ID(), actor, vo.ActionAttachmentAdded, nil, optStr(safeName))
	})
	if err != nil {
		if removeErr := uc.fileStore.Remove(cmd.TicketID, storedName); removeErr != nil {
			uc.logger.Warnw("failed to remove orphaned attachment file",
				"ticket_id", cmd.TicketID,
				"stored_name", storedName,
				"error", removeErr,
			)
		}
		uc.logger.Errorw("failed to add attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment added",
		"ticket_id", cmd.TicketID,
		"attachment_id", attachment.ID(),
		"filename", safeName,
		"size", size,
	)

	return &AddAttachmentResult{Attachment: toAttachmentDTO(attachment)}, nil
}
