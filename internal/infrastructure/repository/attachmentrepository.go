package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(database *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Save(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to save attachment", err.Error())
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, errors.NewStorageError("failed to find attachment", err.Error())
	}

	return r.mapper.AttachmentToDomain(&model)
}

// GetByTicketID returns attachments most recent first.
func (r *AttachmentRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id DESC").
		Find(&attachmentModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to find attachments", err.Error())
	}

	attachments := make([]*ticket.Attachment, len(attachmentModels))
	for i, model := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}
