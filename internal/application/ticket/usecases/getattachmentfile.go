package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

type GetAttachmentFileQuery struct {
	TicketID     uint
	AttachmentID uint
}

type GetAttachmentFileResult struct {
	File dto.AttachmentFileDTO
}

type GetAttachmentFileUseCase struct {
	attachmentRepo ticket.AttachmentRepository
	fileStore      FileStore
}

func NewGetAttachmentFileUseCase(
	attachmentRepo ticket.AttachmentRepository,
	fileStore FileStore,
) *GetAttachmentFileUseCase {
	return &GetAttachmentFileUseCase{
		attachmentRepo: attachmentRepo,
		fileStore:      fileStore,
	}
}

// Execute resolves an attachment to its on-disk path for download. The
// attachment must belong to the ticket named in the query; a mismatched
// pair is indistinguishable from a missing attachment.
func (uc *GetAttachmentFileUseCase) Execute(ctx context.Context, query GetAttachmentFileQuery) (*GetAttachmentFileResult, error) {
	if query.TicketID == 0 || query.AttachmentID == 0 {
		return nil, errors.NewValidationError("ticket ID and attachment ID are required")
	}

	a, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	if a.TicketID() != query.TicketID {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	path, err := uc.fileStore.Resolve(a.TicketID(), a.StoredName())
	if err != nil {
		return nil, errors.NewStorageError("failed to resolve attachment file", err.Error())
	}

	return &GetAttachmentFileResult{
		File: dto.AttachmentFileDTO{
			Path:     path,
			Filename: a.Filename(),
			MimeType: a.MimeType(),
		},
	}, nil
}
