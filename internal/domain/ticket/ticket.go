package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

type Ticket struct {
	id        uint
	title     string
	content   string
	requester string
	assignee  string
	priority  vo.Priority
	status    vo.Status
	createdAt time.Time
	updatedAt time.Time
}

func NewTicket(
	title string,
	content string,
	requester string,
	priority vo.Priority,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(requester) == 0 {
		return nil, fmt.Errorf("requester is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()

	return &Ticket{
		title:     title,
		content:   content,
		requester: requester,
		priority:  priority,
		status:    vo.StatusOpen,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	content string,
	requester string,
	assignee string,
	priority vo.Priority,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:        id,
		title:     title,
		content:   content,
		requester: requester,
		assignee:  assignee,
		priority:  priority,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Content() string {
	return t.content
}

func (t *Ticket) Requester() string {
	return t.requester
}

// Assignee returns the assignee name. Empty string means unassigned.
func (t *Ticket) Assignee() string {
	return t.assignee
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus transitions the ticket to newStatus. It reports whether the
// status actually changed; setting the current status again is a no-op.
func (t *Ticket) ChangeStatus(newStatus vo.Status) (bool, error) {
	if !newStatus.IsValid() {
		return false, fmt.Errorf("invalid status: %s", newStatus)
	}

	if t.status == newStatus {
		return false, nil
	}

	t.status = newStatus
	t.updatedAt = time.Now()

	return true, nil
}

// Assign sets the ticket assignee. Empty string and unset are the same
// "unassigned" state, so assigning "" to an unassigned ticket reports no
// change.
func (t *Ticket) Assign(assignee string) bool {
	if t.assignee == assignee {
		return false
	}

	t.assignee = assignee
	t.updatedAt = time.Now()

	return true
}

// ChangePriority sets the ticket priority. It reports whether the priority
// actually changed.
func (t *Ticket) ChangePriority(newPriority vo.Priority) (bool, error) {
	if !newPriority.IsValid() {
		return false, fmt.Errorf("invalid priority: %s", newPriority)
	}

	if t.priority == newPriority {
		return false, nil
	}

	t.priority = newPriority
	t.updatedAt = time.Now()

	return true, nil
}

// Touch bumps the last-update timestamp. Called when a child record
// (comment, attachment) arrives.
func (t *Ticket) Touch() {
	t.updatedAt = time.Now()
}
