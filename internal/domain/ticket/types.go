package ticket

import "time"

// Summary is one row of the yearly listing.
type Summary struct {
	ID            uint
	RequestedAt   time.Time
	Title         string
	RequesterName string
	RequesterOrg  string
	CreatedByName string
}

// Assignee is a user associated with a ticket at completion time,
// with the display name resolved when the user table is joinable.
type Assignee struct {
	UserID uint
	Name   string
}

// AttachmentMeta is the presentable attachment slot of a ticket.
// Downloadable is set only when both a stored name and a storage path
// are recorded; the path itself is never part of the read model.
type AttachmentMeta struct {
	Name         string
	MIME         string
	Size         int64
	Downloadable bool
}

// StoredAttachment carries the persisted attachment slot including the
// raw storage path. It is only handed to the download path, which must
// verify the path against the upload root before reading it.
type StoredAttachment struct {
	Name string
	Path string
	MIME string
	Size int64
}

// Detail is the full view of a single ticket.
type Detail struct {
	ID                uint
	Number            string
	Title             string
	Status            Status
	RequestedAt       time.Time
	ClosedAt          *time.Time
	CreatedByUserID   *uint
	CreatedByName     string
	RequesterName     string
	RequesterOrg      string
	RequesterPhone    string
	RequestContent    string
	ResolutionContent *string
	Assignees         []Assignee
	Attachment        *AttachmentMeta
}

// Filter selects tickets for the listing query. Statuses is one of the
// two fixed view groups; Search is an already-trimmed substring term,
// empty meaning no text filter.
type Filter struct {
	Year     int
	Statuses []Status
	Search   string
}
