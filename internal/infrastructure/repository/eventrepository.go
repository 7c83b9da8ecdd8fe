package repository

import (
	"context"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

// EventRepository persists the append-only audit log. There is
// deliberately no update or delete path.
type EventRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *EventRepository) Append(ctx context.Context, e *ticket.Event) error {
	model := r.mapper.EventToModel(e)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return errors.NewStorageError("failed to append event", err.Error())
	}

	return e.SetID(model.ID)
}

// GetByTicketID returns events most recent first for history display.
// Replaying them oldest first reconstructs the ticket's field history.
func (r *EventRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Event, error) {
	var eventModels []models.EventModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("id DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.NewStorageError("failed to find events", err.Error())
	}

	events := make([]*ticket.Event, len(eventModels))
	for i, model := range eventModels {
		e, err := r.mapper.EventToDomain(&model)
		if err != nil {
			return nil, err
		}
		events[i] = e
	}

	return events, nil
}
