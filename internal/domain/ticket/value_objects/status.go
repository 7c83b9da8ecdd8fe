package value_objects

import "fmt"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "prog"
	StatusOnHold     Status = "hold"
	StatusDone       Status = "done"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusOnHold:     true,
	StatusDone:       true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsDone() bool {
	return s == StatusDone
}
