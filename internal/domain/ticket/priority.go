package ticket

// Priority is the urgency classification of a ticket.
type Priority string

const (
	PriorityLow  Priority = "LOW"
	PriorityMid  Priority = "MID"
	PriorityHigh Priority = "HIGH"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMid, PriorityHigh:
		return true
	}
	return false
}
