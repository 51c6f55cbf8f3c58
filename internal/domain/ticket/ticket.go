package ticket

import (
	"fmt"
	"strings"
	"time"

	"maintdesk/internal/shared/biztime"
)

// Ticket is a maintenance request record. New tickets start OPEN with no
// assignees and no attachment; the ticket number is derived from the
// reserved id and the creation year once persistence assigns the id.
type Ticket struct {
	id              uint
	number          string
	title           string
	requesterName   string
	requesterOrg    string
	requesterPhone  string
	requestContent  string
	status          Status
	priority        Priority
	requestedAt     time.Time
	createdAt       time.Time
	updatedAt       time.Time
	createdByUserID *uint
	clientID        *uint
}

// NewTicket builds a ticket draft from caller input. Title and request
// content are required after trimming; all text fields are stored trimmed.
func NewTicket(title, requesterName, requesterOrg, requesterPhone, requestContent string, createdByUserID *uint) (*Ticket, error) {
	title = strings.TrimSpace(title)
	requestContent = strings.TrimSpace(requestContent)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if requestContent == "" {
		return nil, fmt.Errorf("request content is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		title:           title,
		requesterName:   strings.TrimSpace(requesterName),
		requesterOrg:    strings.TrimSpace(requesterOrg),
		requesterPhone:  strings.TrimSpace(requesterPhone),
		requestContent:  requestContent,
		status:          StatusOpen,
		priority:        PriorityMid,
		requestedAt:     now,
		createdAt:       now,
		updatedAt:       now,
		createdByUserID: createdByUserID,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Number() string          { return t.number }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) RequesterName() string   { return t.requesterName }
func (t *Ticket) RequesterOrg() string    { return t.requesterOrg }
func (t *Ticket) RequesterPhone() string  { return t.requesterPhone }
func (t *Ticket) RequestContent() string  { return t.requestContent }
func (t *Ticket) Status() Status          { return t.status }
func (t *Ticket) Priority() Priority      { return t.priority }
func (t *Ticket) RequestedAt() time.Time  { return t.requestedAt }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) CreatedByUserID() *uint  { return t.createdByUserID }
func (t *Ticket) ClientID() *uint         { return t.clientID }

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

// SetNumber assigns the immutable human-facing ticket number.
func (t *Ticket) SetNumber(number string) error {
	if t.number != "" {
		return fmt.Errorf("ticket number is already set")
	}
	if number == "" {
		return fmt.Errorf("ticket number cannot be empty")
	}
	t.number = number
	return nil
}

func (t *Ticket) SetClientID(clientID uint) {
	t.clientID = &clientID
}

// FormatNumber derives the ticket number from the creation year in the
// reporting timezone and the reserved id.
func FormatNumber(year int, id uint) string {
	return fmt.Sprintf("MT-%04d-%06d", year, id)
}
