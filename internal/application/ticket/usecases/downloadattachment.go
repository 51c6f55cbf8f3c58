package usecases

import (
	"context"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	TicketID uint
}

type DownloadAttachmentResult struct {
	// Path is the verified absolute path inside the upload root.
	Path     string
	Filename string
	MIME     string
}

// DownloadAttachmentUseCase resolves a ticket's stored attachment and
// verifies the persisted path against the upload root before it may be
// served. Out-of-root paths and missing files report not-found.
type DownloadAttachmentUseCase struct {
	ticketRepo ticket.Repository
	store      AttachmentStore
	logger     logger.Interface
}

func NewDownloadAttachmentUseCase(
	ticketRepo ticket.Repository,
	store AttachmentStore,
	log logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		logger:     log,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	att, err := uc.ticketRepo.GetAttachment(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to load attachment metadata", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}
	if att == nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	path, err := uc.store.Resolve(att.Path)
	if err != nil {
		uc.logger.Warnw("attachment path rejected", "ticket_id", query.TicketID)
		return nil, err
	}

	return &DownloadAttachmentResult{
		Path:     path,
		Filename: att.Name,
		MIME:     att.MIME,
	}, nil
}
