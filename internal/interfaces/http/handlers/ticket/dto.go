package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"maintdesk/internal/application/ticket/usecases"
	"maintdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title          string `json:"title" binding:"required"`
	RequesterName  string `json:"requester_name" binding:"required"`
	RequesterOrg   string `json:"requester_org" binding:"required"`
	RequesterPhone string `json:"requester_phone" binding:"required"`
	RequestContent string `json:"request_content" binding:"required"`
}

func (r CreateTicketRequest) ToCommand(createdBy *uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:           r.Title,
		RequesterName:   r.RequesterName,
		RequesterOrg:    r.RequesterOrg,
		RequesterPhone:  r.RequesterPhone,
		RequestContent:  r.RequestContent,
		CreatedByUserID: createdBy,
	}
}

type CompleteTicketRequest struct {
	ResolutionContent string `json:"resolution_content" binding:"required"`
	AssigneeUserIDs   []uint `json:"assignee_user_ids"`
}

func parseListTicketsQuery(c *gin.Context) (usecases.ListTicketsQuery, error) {
	yearStr := c.Query("year")
	if yearStr == "" {
		return usecases.ListTicketsQuery{}, errors.NewValidationError("year is required")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year <= 0 {
		return usecases.ListTicketsQuery{}, errors.NewValidationError("invalid year")
	}

	return usecases.ListTicketsQuery{
		Year:   year,
		Tab:    c.DefaultQuery("tab", "in_progress"),
		Search: c.Query("q"),
	}, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
