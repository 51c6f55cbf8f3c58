package ticket

import "context"

// Repository persists tickets and answers the listing and detail queries.
// List and GetDetail resolve display names through the user table when it
// is joinable and silently fall back to empty names otherwise.
type Repository interface {
	// Insert reserves an id, derives the ticket number from it, applies
	// the default client when the draft carries none, and stores the row.
	// The draft's id and number are set on success.
	Insert(ctx context.Context, t *Ticket) error

	List(ctx context.Context, filter Filter) ([]Summary, error)

	GetDetail(ctx context.Context, id uint) (*Detail, error)

	Exists(ctx context.Context, id uint) (bool, error)

	// Complete closes the ticket and upserts the assignee pairs. It must
	// run inside the caller's transaction; duplicate pairs are no-ops.
	Complete(ctx context.Context, id uint, resolution string, assigneeUserIDs []uint) error

	// UpdateAttachment overwrites the ticket's single attachment slot.
	UpdateAttachment(ctx context.Context, id uint, att StoredAttachment) error

	// GetAttachment returns the persisted attachment slot including the
	// raw storage path, or nil when the slot is empty.
	GetAttachment(ctx context.Context, id uint) (*StoredAttachment, error)

	// Delete removes assignee rows then the ticket row. It must run inside
	// the caller's transaction.
	Delete(ctx context.Context, id uint) error
}
