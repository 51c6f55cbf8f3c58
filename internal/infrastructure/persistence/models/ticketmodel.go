package models

import "time"

// TicketModel is the persisted shape of a maintenance ticket. The
// attachment slot is denormalized onto the row; re-uploads overwrite it.
type TicketModel struct {
	ID                uint   `gorm:"primaryKey"`
	TicketNo          string `gorm:"column:ticket_no;uniqueIndex;size:50;not null"`
	ClientID          uint   `gorm:"column:client_id;not null;index"`
	Title             string `gorm:"size:200;not null"`
	Status            string `gorm:"size:20;not null;index"`
	Priority          string `gorm:"size:20;not null"`
	RequestedAt       time.Time `gorm:"not null;index"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
	ClosedAt          *time.Time
	RequesterName     string  `gorm:"size:100"`
	RequesterOrg      string  `gorm:"size:100"`
	RequesterPhone    string  `gorm:"size:50"`
	RequestContent    string  `gorm:"type:text"`
	ResolutionContent *string `gorm:"type:text"`
	AttachmentName    *string `gorm:"size:255"`
	AttachmentPath    *string `gorm:"size:500"`
	AttachmentMime    *string `gorm:"size:100"`
	AttachmentSize    *int64
	CreatedByUserID   *uint `gorm:"index"`

	// Note: no foreign key constraints or associations; relationships are
	// managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TicketAssigneeModel links a ticket to a participating user. The
// (ticket_id, user_id) pair is unique; re-inserting it is a no-op.
type TicketAssigneeModel struct {
	ID       uint `gorm:"primaryKey"`
	TicketID uint `gorm:"column:ticket_id;not null;uniqueIndex:idx_ticket_user"`
	UserID   uint `gorm:"column:user_id;not null;uniqueIndex:idx_ticket_user"`
}

func (TicketAssigneeModel) TableName() string {
	return "ticket_assignees"
}
