package usecases

import (
	"context"

	"maintdesk/internal/application/ticket/dto"
	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, log logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	detail, err := uc.ticketRepo.GetDetail(ctx, query.TicketID)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to get ticket detail", "ticket_id", query.TicketID, "error", err)
		}
		return nil, err
	}

	return dto.DetailFromDomain(detail), nil
}
