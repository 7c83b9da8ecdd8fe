package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
)

// defaultActor attributes writes that arrive without an explicit actor.
const defaultActor = "user"

// Recorder is the audit trail writer. Every mutation of a ticket goes
// through Record inside the same transaction as the mutation itself, so
// the event log and the ticket row can never disagree.
type Recorder struct {
	eventRepo ticket.EventRepository
}

func NewRecorder(eventRepo ticket.EventRepository) *Recorder {
	return &Recorder{eventRepo: eventRepo}
}

func (r *Recorder) Record(
	ctx context.Context,
	ticketID uint,
	actor string,
	action vo.Action,
	fromValue, toValue *string,
) error {
	event, err := ticket.NewEvent(ticketID, actorOrDefault(actor), action, fromValue, toValue)
	if err != nil {
		return errors.NewInternalError("failed to build audit event", err.Error())
	}
	return r.eventRepo.Append(ctx, event)
}

func actorOrDefault(actor string) string {
	if actor == "" {
		return defaultActor
	}
	return actor
}

// optStr maps the empty string to nil so "unset" round-trips as NULL in
// the event log.
func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
