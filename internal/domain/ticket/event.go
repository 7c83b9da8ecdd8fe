package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

// Event is an immutable audit record of a single field transition or
// child-record addition on a ticket. Events are append-only: once written
// they are never updated or deleted, and corrections are represented as a
// new event layered on top.
type Event struct {
	id        uint
	ticketID  uint
	actor     string
	action    vo.Action
	fromValue *string
	toValue   *string
	createdAt time.Time
}

func NewEvent(ticketID uint, actor string, action vo.Action, fromValue, toValue *string) (*Event, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(actor) == 0 {
		return nil, fmt.Errorf("actor is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action: %s", action)
	}

	return &Event{
		ticketID:  ticketID,
		actor:     actor,
		action:    action,
		fromValue: fromValue,
		toValue:   toValue,
		createdAt: time.Now(),
	}, nil
}

func ReconstructEvent(
	id, ticketID uint,
	actor string,
	action vo.Action,
	fromValue, toValue *string,
	createdAt time.Time,
) (*Event, error) {
	if id == 0 {
		return nil, fmt.Errorf("event ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action: %s", action)
	}

	return &Event{
		id:        id,
		ticketID:  ticketID,
		actor:     actor,
		action:    action,
		fromValue: fromValue,
		toValue:   toValue,
		createdAt: createdAt,
	}, nil
}

func (e *Event) ID() uint {
	return e.id
}

func (e *Event) TicketID() uint {
	return e.ticketID
}

func (e *Event) Actor() string {
	return e.actor
}

func (e *Event) Action() vo.Action {
	return e.action
}

func (e *Event) FromValue() *string {
	return e.fromValue
}

func (e *Event) ToValue() *string {
	return e.toValue
}

func (e *Event) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("event ID cannot be zero")
	}
	e.id = id
	return nil
}

// ReplayState is the ticket state derived by replaying an event log from
// the creation event forward. New tickets start open and unassigned; the
// creation event carries the initial priority as its new value, and
// field-change events overwrite the corresponding field.
type ReplayState struct {
	Status   vo.Status
	Assignee string
	Priority vo.Priority
}

// Replay applies events in chronological order (oldest first) and returns
// the resulting state. The full event log of a ticket reproduces the
// status/assignee/priority values the ticket row currently holds.
func Replay(events []*Event) ReplayState {
	state := ReplayState{
		Status:   vo.StatusOpen,
		Assignee: "",
		Priority: vo.PriorityMedium,
	}

	for _, e := range events {
		switch e.action {
		case vo.ActionCreated:
			if e.toValue != nil {
				state.Priority = vo.Priority(*e.toValue)
			}
		case vo.ActionStatusChange:
			if e.toValue != nil {
				state.Status = vo.Status(*e.toValue)
			}
		case vo.ActionAssigneeChange:
			// A nil target means the ticket was unassigned.
			if e.toValue != nil {
				state.Assignee = *e.toValue
			} else {
				state.Assignee = ""
			}
		case vo.ActionPriorityChange:
			if e.toValue != nil {
				state.Priority = vo.Priority(*e.toValue)
			}
		}
	}

	return state
}
