package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/infrastructure/persistence/mappers"
	"maintdesk/internal/infrastructure/persistence/models"
	"maintdesk/internal/shared/biztime"
	"maintdesk/internal/shared/db"
	"maintdesk/internal/shared/errors"
	"maintdesk/internal/shared/logger"
)

// TicketRepository is the gorm-backed implementation of ticket.Repository.
//
// The listing and detail queries come in two tiers: the primary statement
// joins the user table to resolve display names, and an equivalent
// join-free statement substitutes empty names when the primary fails
// against a degraded schema. The fallback is not an error path; only both
// tiers failing surfaces an error.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(gdb *gorm.DB, log logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

const listSelectJoin = `
SELECT t.id, t.requested_at, t.title,
       COALESCE(t.requester_name, '') AS requester_name,
       COALESCE(t.requester_org, '') AS requester_org,
       COALESCE(u.name, '') AS created_by_name
FROM tickets t
LEFT JOIN users u ON u.id = t.created_by_user_id
WHERE t.requested_at >= ? AND t.requested_at < ?
  AND t.status IN ?`

const listSelectNoJoin = `
SELECT t.id, t.requested_at, t.title,
       COALESCE(t.requester_name, '') AS requester_name,
       COALESCE(t.requester_org, '') AS requester_org,
       '' AS created_by_name
FROM tickets t
WHERE t.requested_at >= ? AND t.requested_at < ?
  AND t.status IN ?`

const listOrder = ` ORDER BY t.requested_at DESC, t.id DESC`

type summaryRow struct {
	ID            uint
	RequestedAt   time.Time
	Title         string
	RequesterName string
	RequesterOrg  string
	CreatedByName string
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]ticket.Summary, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	yearStart, yearEnd := biztime.YearRangeUTC(filter.Year)
	statuses := make([]string, len(filter.Statuses))
	for i, s := range filter.Statuses {
		statuses[i] = s.String()
	}

	search := strings.TrimSpace(filter.Search)
	like := "%" + strings.ToLower(search) + "%"

	query := listSelectJoin
	args := []interface{}{yearStart, yearEnd, statuses}
	if search != "" {
		query += ` AND (LOWER(t.title) LIKE ? OR LOWER(COALESCE(t.requester_org, '')) LIKE ? OR LOWER(COALESCE(u.name, '')) LIKE ?)`
		args = append(args, like, like, like)
	}

	var rows []summaryRow
	err := tx.Raw(query+listOrder, args...).Scan(&rows).Error
	if err != nil {
		r.logger.Warnw("ticket list join query failed, retrying without user join", "error", err)

		query = listSelectNoJoin
		args = []interface{}{yearStart, yearEnd, statuses}
		if search != "" {
			query += ` AND (LOWER(t.title) LIKE ? OR LOWER(COALESCE(t.requester_org, '')) LIKE ?)`
			args = append(args, like, like)
		}

		rows = nil
		if err := tx.Raw(query+listOrder, args...).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to list tickets: %w", err)
		}
	}

	summaries := make([]ticket.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = ticket.Summary{
			ID:            row.ID,
			RequestedAt:   row.RequestedAt,
			Title:         row.Title,
			RequesterName: row.RequesterName,
			RequesterOrg:  row.RequesterOrg,
			CreatedByName: row.CreatedByName,
		}
	}

	return summaries, nil
}

// Insert reserves the row id first so the ticket number can embed it: the
// row is created under a unique placeholder number, then the number is
// derived from the assigned id and the creation year in the reporting
// timezone and written back in the same unit of work.
func (r *TicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if t.ClientID() == nil {
		var client models.ClientModel
		if err := tx.Order("id ASC").First(&client).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.NewValidationError(
					"cannot create ticket: the clients table has no rows, or the tickets.client_id NOT NULL constraint is active and would reject the insert",
					"no_client_rows")
			}
			return fmt.Errorf("failed to select default client: %w", err)
		}
		t.SetClientID(client.ID)
	}

	model := r.mapper.ToModel(t)
	model.TicketNo = "PENDING-" + uuid.NewString()

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to insert ticket: %w", err)
	}

	number := ticket.FormatNumber(biztime.Year(t.CreatedAt()), model.ID)
	if err := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Update("ticket_no", number).Error; err != nil {
		return fmt.Errorf("failed to assign ticket number: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}
	return t.SetNumber(number)
}

const detailSelectJoin = `
SELECT t.id, t.ticket_no, t.title, t.status, t.requested_at, t.closed_at,
       t.created_by_user_id,
       COALESCE(u.name, '') AS created_by_name,
       COALESCE(t.requester_name, '') AS requester_name,
       COALESCE(t.requester_org, '') AS requester_org,
       COALESCE(t.requester_phone, '') AS requester_phone,
       COALESCE(t.request_content, '') AS request_content,
       t.resolution_content,
       t.attachment_name, t.attachment_path, t.attachment_mime, t.attachment_size
FROM tickets t
LEFT JOIN users u ON u.id = t.created_by_user_id
WHERE t.id = ?`

const detailSelectNoJoin = `
SELECT t.id, t.ticket_no, t.title, t.status, t.requested_at, t.closed_at,
       t.created_by_user_id,
       '' AS created_by_name,
       COALESCE(t.requester_name, '') AS requester_name,
       COALESCE(t.requester_org, '') AS requester_org,
       COALESCE(t.requester_phone, '') AS requester_phone,
       COALESCE(t.request_content, '') AS request_content,
       t.resolution_content,
       t.attachment_name, t.attachment_path, t.attachment_mime, t.attachment_size
FROM tickets t
WHERE t.id = ?`

type detailRow struct {
	ID                uint
	TicketNo          string
	Title             string
	Status            string
	RequestedAt       time.Time
	ClosedAt          *time.Time
	CreatedByUserID   *uint
	CreatedByName     string
	RequesterName     string
	RequesterOrg      string
	RequesterPhone    string
	RequestContent    string
	ResolutionContent *string
	AttachmentName    *string
	AttachmentPath    *string
	AttachmentMime    *string
	AttachmentSize    *int64
}

func (r *TicketRepository) GetDetail(ctx context.Context, id uint) (*ticket.Detail, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row detailRow
	result := tx.Raw(detailSelectJoin, id).Scan(&row)
	if result.Error != nil {
		r.logger.Warnw("ticket detail join query failed, retrying without user join", "ticket_id", id, "error", result.Error)
		row = detailRow{}
		result = tx.Raw(detailSelectNoJoin, id).Scan(&row)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to get ticket detail: %w", result.Error)
		}
	}
	if result.RowsAffected == 0 {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	assignees, err := r.listAssignees(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &ticket.Detail{
		ID:                row.ID,
		Number:            row.TicketNo,
		Title:             row.Title,
		Status:            ticket.Status(row.Status),
		RequestedAt:       row.RequestedAt,
		ClosedAt:          row.ClosedAt,
		CreatedByUserID:   row.CreatedByUserID,
		CreatedByName:     row.CreatedByName,
		RequesterName:     row.RequesterName,
		RequesterOrg:      row.RequesterOrg,
		RequesterPhone:    row.RequesterPhone,
		RequestContent:    row.RequestContent,
		ResolutionContent: row.ResolutionContent,
		Assignees:         assignees,
	}

	if row.AttachmentName != nil && *row.AttachmentName != "" {
		meta := &ticket.AttachmentMeta{
			Name:         *row.AttachmentName,
			Downloadable: row.AttachmentPath != nil && *row.AttachmentPath != "",
		}
		if row.AttachmentMime != nil {
			meta.MIME = *row.AttachmentMime
		}
		if row.AttachmentSize != nil {
			meta.Size = *row.AttachmentSize
		}
		detail.Attachment = meta
	}

	return detail, nil
}

const assigneeSelectJoin = `
SELECT a.user_id, COALESCE(u.name, '') AS name
FROM ticket_assignees a
LEFT JOIN users u ON u.id = a.user_id
WHERE a.ticket_id = ?
ORDER BY a.id ASC`

const assigneeSelectNoJoin = `
SELECT a.user_id, '' AS name
FROM ticket_assignees a
WHERE a.ticket_id = ?
ORDER BY a.id ASC`

type assigneeRow struct {
	UserID uint
	Name   string
}

func (r *TicketRepository) listAssignees(ctx context.Context, ticketID uint) ([]ticket.Assignee, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []assigneeRow
	if err := tx.Raw(assigneeSelectJoin, ticketID).Scan(&rows).Error; err != nil {
		r.logger.Warnw("assignee join query failed, retrying without user join", "ticket_id", ticketID, "error", err)
		rows = nil
		if err := tx.Raw(assigneeSelectNoJoin, ticketID).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load assignees: %w", err)
		}
	}

	assignees := make([]ticket.Assignee, len(rows))
	for i, row := range rows {
		assignees[i] = ticket.Assignee{UserID: row.UserID, Name: row.Name}
	}
	return assignees, nil
}

func (r *TicketRepository) Exists(ctx context.Context, id uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check ticket existence: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) Complete(ctx context.Context, id uint, resolution string, assigneeUserIDs []uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	now := biztime.NowUTC()
	updates := map[string]interface{}{
		"status":             ticket.StatusClosed.String(),
		"closed_at":          now,
		"updated_at":         now,
		"resolution_content": resolution,
	}
	if err := tx.Model(&models.TicketModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to close ticket: %w", err)
	}

	for _, userID := range assigneeUserIDs {
		pair := models.TicketAssigneeModel{TicketID: id, UserID: userID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&pair).Error; err != nil {
			return fmt.Errorf("failed to record assignee: %w", err)
		}
	}

	return nil
}

func (r *TicketRepository) UpdateAttachment(ctx context.Context, id uint, att ticket.StoredAttachment) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"attachment_name": att.Name,
		"attachment_path": att.Path,
		"attachment_mime": att.MIME,
		"attachment_size": att.Size,
		"updated_at":      biztime.NowUTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update attachment metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetAttachment(ctx context.Context, id uint) (*ticket.StoredAttachment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.TicketModel
	if err := tx.Select("attachment_name", "attachment_path", "attachment_mime", "attachment_size").
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to load attachment metadata: %w", err)
	}

	if model.AttachmentName == nil || *model.AttachmentName == "" ||
		model.AttachmentPath == nil || *model.AttachmentPath == "" {
		return nil, nil
	}

	att := &ticket.StoredAttachment{
		Name: *model.AttachmentName,
		Path: *model.AttachmentPath,
	}
	if model.AttachmentMime != nil {
		att.MIME = *model.AttachmentMime
	}
	if model.AttachmentSize != nil {
		att.Size = *model.AttachmentSize
	}
	return att, nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketAssigneeModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete assignees: %w", err)
	}

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}
