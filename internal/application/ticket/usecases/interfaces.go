package usecases

import (
	"context"
	"io"

	"maintdesk/internal/application/ticket/dto"
	"maintdesk/internal/infrastructure/storage"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type CompleteTicketExecutor interface {
	Execute(ctx context.Context, cmd CompleteTicketCommand) (*dto.TicketDetailDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error)
}

// TransactionManager scopes a use case's writes to one unit of work.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AdminGuard resolves the caller's role per call and permits
// administrative operations only for the ADMIN role code.
type AdminGuard interface {
	EnsureAdmin(ctx context.Context, userID uint) error
}

// AttachmentStore writes attachment files under the upload root and
// resolves persisted paths with a containment check.
type AttachmentStore interface {
	Save(ticketID uint, filename string, r io.Reader) (*storage.StoredFile, error)
	Resolve(path string) (string, error)
}
