package usecases

import (
	"context"
	"strings"

	"maintdesk/internal/application/ticket/dto"
	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

// TabCompleted selects the closed-ticket view; any other tab value
// selects the in-progress view.
const TabCompleted = "completed"

type ListTicketsQuery struct {
	Year   int
	Tab    string
	Search string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, log logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     log,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]dto.TicketSummaryDTO, error) {
	if query.Year <= 0 {
		return nil, errors.NewValidationError("year is required")
	}

	statuses := ticket.InProgressGroup()
	if query.Tab == TabCompleted {
		statuses = ticket.CompletedGroup()
	}

	filter := ticket.Filter{
		Year:     query.Year,
		Statuses: statuses,
		Search:   strings.TrimSpace(query.Search),
	}

	summaries, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "year", query.Year, "tab", query.Tab, "error", err)
		return nil, err
	}

	return dto.SummariesFromDomain(summaries), nil
}
