package usecases

import (
	"context"

	"maintdesk/internal/application/ticket/dto"
	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title           string
	RequesterName   string
	RequesterOrg    string
	RequesterPhone  string
	RequestContent  string
	CreatedByUserID *uint
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	tm         TransactionManager
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	tm TransactionManager,
	log logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		tm:         tm,
		logger:     log,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDetailDTO, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title)

	draft, err := ticket.NewTicket(
		cmd.Title,
		cmd.RequesterName,
		cmd.RequesterOrg,
		cmd.RequesterPhone,
		cmd.RequestContent,
		cmd.CreatedByUserID,
	)
	if err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.ticketRepo.Insert(txCtx, draft)
	}); err != nil {
		uc.logger.Errorw("failed to insert ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", draft.ID(), "ticket_no", draft.Number())

	detail, err := uc.ticketRepo.GetDetail(ctx, draft.ID())
	if err != nil {
		uc.logger.Errorw("failed to load created ticket detail", "ticket_id", draft.ID(), "error", err)
		return nil, err
	}

	return dto.DetailFromDomain(detail), nil
}
