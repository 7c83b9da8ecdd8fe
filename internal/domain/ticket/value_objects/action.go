package value_objects

import "fmt"

// Action identifies the kind of transition an audit event records.
type Action string

const (
	ActionCreated         Action = "created"
	ActionStatusChange    Action = "status"
	ActionAssigneeChange  Action = "assignee"
	ActionPriorityChange  Action = "priority"
	ActionCommentAdded    Action = "comment"
	ActionAttachmentAdded Action = "attach"
)

var validActions = map[Action]bool{
	ActionCreated:         true,
	ActionStatusChange:    true,
	ActionAssigneeChange:  true,
	ActionPriorityChange:  true,
	ActionCommentAdded:    true,
	ActionAttachmentAdded: true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

func NewAction(s string) (Action, error) {
	a := Action(s)
	if !a.IsValid() {
		return "", fmt.Errorf("invalid action: %s", s)
	}
	return a, nil
}
