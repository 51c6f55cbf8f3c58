package ticket

// Status is the lifecycle state of a maintenance ticket.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusWaiting    Status = "WAITING"
	StatusClosed     Status = "CLOSED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusWaiting, StatusClosed:
		return true
	}
	return false
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// InProgressGroup is the fixed status set of the "in progress" listing view.
func InProgressGroup() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusWaiting}
}

// CompletedGroup is the fixed status set of the "completed" listing view.
func CompletedGroup() []Status {
	return []Status{StatusClosed}
}
