package usecases

import (
	"context"
	"strings"

	"maintdesk/internal/application/ticket/dto"
	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

type CompleteTicketCommand struct {
	TicketID          uint
	ResolutionContent string
	AssigneeUserIDs   []uint
	CompletedBy       *uint
}

// CompleteTicketUseCase closes a ticket: within one unit of work it sets
// the CLOSED status, the closing timestamps and the resolution text, and
// upserts the assignee associations, ignoring duplicate pairs. A
// nonexistent ticket reports not-found with no writes.
type CompleteTicketUseCase struct {
	ticketRepo ticket.Repository
	tm         TransactionManager
	logger     logger.Interface
}

func NewCompleteTicketUseCase(
	ticketRepo ticket.Repository,
	tm TransactionManager,
	log logger.Interface,
) *CompleteTicketUseCase {
	return &CompleteTicketUseCase{
		ticketRepo: ticketRepo,
		tm:         tm,
		logger:     log,
	}
}

func (uc *CompleteTicketUseCase) Execute(ctx context.Context, cmd CompleteTicketCommand) (*dto.TicketDetailDTO, error) {
	uc.logger.Infow("executing complete ticket use case", "ticket_id", cmd.TicketID)

	resolution := strings.TrimSpace(cmd.ResolutionContent)
	if resolution == "" {
		return nil, errors.NewValidationError("resolution content is required")
	}
	if len(cmd.AssigneeUserIDs) == 0 {
		return nil, errors.NewValidationError("at least one assignee is required")
	}

	err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.ticketRepo.Exists(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError("ticket not found")
		}
		return uc.ticketRepo.Complete(txCtx, cmd.TicketID, resolution, cmd.AssigneeUserIDs)
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to complete ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("ticket completed", "ticket_id", cmd.TicketID, "assignees", len(cmd.AssigneeUserIDs))

	detail, err := uc.ticketRepo.GetDetail(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load completed ticket detail", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	return dto.DetailFromDomain(detail), nil
}
