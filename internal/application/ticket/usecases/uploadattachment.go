package usecases

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

// allowedExtensions restricts uploads to the supported attachment types.
var allowedExtensions = map[string]bool{
	".zip": true,
	".pdf": true,
	".png": true,
	".jpg": true,
}

type UploadAttachmentCommand struct {
	TicketID    uint
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	UploadedBy  uint
}

type UploadAttachmentResult struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// UploadAttachmentUseCase writes the uploaded bytes to durable storage
// outside any query transaction, then performs a best-effort metadata
// update on the ticket row. A failed metadata update leaves the file on
// disk and the record unchanged; the inconsistency is logged, not retried.
type UploadAttachmentUseCase struct {
	ticketRepo ticket.Repository
	store      AttachmentStore
	maxBytes   int64
	logger     logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.Repository,
	store AttachmentStore,
	maxBytes int64,
	log logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo: ticketRepo,
		store:      store,
		maxBytes:   maxBytes,
		logger:     log,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error) {
	uc.logger.Infow("executing upload attachment use case", "ticket_id", cmd.TicketID, "filename", cmd.Filename)

	ext := strings.ToLower(filepath.Ext(cmd.Filename))
	if !allowedExtensions[ext] {
		return nil, errors.NewValidationError("file type not allowed (.zip, .pdf, .png, .jpg)")
	}
	if cmd.Size > uc.maxBytes {
		return nil, errors.NewValidationError(fmt.Sprintf("file exceeds maximum size of %d bytes", uc.maxBytes))
	}

	exists, err := uc.ticketRepo.Exists(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to check ticket before upload", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	stored, err := uc.store.Save(cmd.TicketID, cmd.Filename, io.LimitReader(cmd.Body, uc.maxBytes))
	if err != nil {
		uc.logger.Errorw("failed to store attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to store attachment")
	}

	att := ticket.StoredAttachment{
		Name: stored.DisplayName,
		Path: stored.Path,
		MIME: cmd.ContentType,
		Size: stored.Size,
	}
	if err := uc.ticketRepo.UpdateAttachment(ctx, cmd.TicketID, att); err != nil {
		// The file is already on disk; the stale metadata window is
		// accepted and surfaced in logs only.
		uc.logger.Warnw("attachment stored but metadata update failed",
			"ticket_id", cmd.TicketID, "path", stored.Path, "error", err)
	}

	uc.logger.Infow("attachment uploaded", "ticket_id", cmd.TicketID, "filename", stored.DisplayName, "size", stored.Size)

	return &UploadAttachmentResult{
		Filename:    stored.DisplayName,
		Size:        stored.Size,
		ContentType: cmd.ContentType,
	}, nil
}
