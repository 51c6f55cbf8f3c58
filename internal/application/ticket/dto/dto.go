// Package dto holds the application-facing read models for tickets.
package dto

import (
	"fmt"
	"time"

	"maintdesk/internal/domain/ticket"
)

type TicketSummaryDTO struct {
	ID            uint      `json:"id"`
	RequestedAt   time.Time `json:"requested_at"`
	Title         string    `json:"title"`
	RequesterName string    `json:"requester_name"`
	RequesterOrg  string    `json:"requester_org"`
	CreatedByName string    `json:"created_by_name"`
}

type AssigneeDTO struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

type TicketDetailDTO struct {
	ID                uint          `json:"id"`
	TicketNo          string        `json:"ticket_no"`
	Title             string        `json:"title"`
	Status            string        `json:"status"`
	RequestedAt       time.Time     `json:"requested_at"`
	ClosedAt          *time.Time    `json:"closed_at,omitempty"`
	CreatedByUserID   *uint         `json:"created_by_user_id,omitempty"`
	CreatedByName     string        `json:"created_by_name"`
	RequesterName     string        `json:"requester_name"`
	RequesterOrg      string        `json:"requester_org"`
	RequesterPhone    string        `json:"requester_phone"`
	RequestContent    string        `json:"request_content"`
	ResolutionContent *string       `json:"resolution_content,omitempty"`
	Assignees         []AssigneeDTO `json:"assignees"`

	AttachmentName *string `json:"attachment_name,omitempty"`
	AttachmentMime *string `json:"attachment_mime,omitempty"`
	AttachmentSize *int64  `json:"attachment_size,omitempty"`

	// AttachmentDownloadURL is the derived download reference; the raw
	// storage path is never part of the read model.
	AttachmentDownloadURL *string `json:"attachment_download_url,omitempty"`
}

func SummariesFromDomain(summaries []ticket.Summary) []TicketSummaryDTO {
	out := make([]TicketSummaryDTO, len(summaries))
	for i, s := range summaries {
		out[i] = TicketSummaryDTO{
			ID:            s.ID,
			RequestedAt:   s.RequestedAt,
			Title:         s.Title,
			RequesterName: s.RequesterName,
			RequesterOrg:  s.RequesterOrg,
			CreatedByName: s.CreatedByName,
		}
	}
	return out
}

func DetailFromDomain(d *ticket.Detail) *TicketDetailDTO {
	out := &TicketDetailDTO{
		ID:                d.ID,
		TicketNo:          d.Number,
		Title:             d.Title,
		Status:            d.Status.String(),
		RequestedAt:       d.RequestedAt,
		ClosedAt:          d.ClosedAt,
		CreatedByUserID:   d.CreatedByUserID,
		CreatedByName:     d.CreatedByName,
		RequesterName:     d.RequesterName,
		RequesterOrg:      d.RequesterOrg,
		RequesterPhone:    d.RequesterPhone,
		RequestContent:    d.RequestContent,
		ResolutionContent: d.ResolutionContent,
		Assignees:         make([]AssigneeDTO, len(d.Assignees)),
	}

	for i, a := range d.Assignees {
		out.Assignees[i] = AssigneeDTO{UserID: a.UserID, Name: a.Name}
	}

	if d.Attachment != nil {
		name := d.Attachment.Name
		out.AttachmentName = &name
		if d.Attachment.MIME != "" {
			mime := d.Attachment.MIME
			out.AttachmentMime = &mime
		}
		if d.Attachment.Size > 0 {
			size := d.Attachment.Size
			out.AttachmentSize = &size
		}
		if d.Attachment.Downloadable {
			url := fmt.Sprintf("/api/maintenance/%d/attachment/download", d.ID)
			out.AttachmentDownloadURL = &url
		}
	}

	return out
}
