package usecases

import (
	"context"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID  uint
	DeletedBy uint
}

// DeleteTicketUseCase removes a ticket and its assignee associations in
// one unit of work. The caller's admin role is re-resolved from the
// database on every call before anything is touched.
type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	adminGuard AdminGuard
	tm         TransactionManager
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	adminGuard AdminGuard,
	tm TransactionManager,
	log logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		adminGuard: adminGuard,
		tm:         tm,
		logger:     log,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "deleted_by", cmd.DeletedBy)

	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}

	if err := uc.adminGuard.EnsureAdmin(ctx, cmd.DeletedBy); err != nil {
		uc.logger.Warnw("delete ticket denied", "ticket_id", cmd.TicketID, "user_id", cmd.DeletedBy)
		return err
	}

	err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
