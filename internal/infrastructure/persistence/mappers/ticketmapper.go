package mappers

import (
	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain values and
// persistence models.
type TicketMapper interface {
	// ToModel converts a ticket draft to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:              t.ID(),
		TicketNo:        t.Number(),
		Title:           t.Title(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		RequestedAt:     t.RequestedAt(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		RequesterName:   t.RequesterName(),
		RequesterOrg:    t.RequesterOrg(),
		RequesterPhone:  t.RequesterPhone(),
		RequestContent:  t.RequestContent(),
		CreatedByUserID: t.CreatedByUserID(),
	}

	if t.ClientID() != nil {
		model.ClientID = *t.ClientID()
	}

	return model
}
