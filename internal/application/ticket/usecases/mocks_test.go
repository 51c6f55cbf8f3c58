package usecases

import (
	"context"
	"io"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/infrastructure/storage"
	"maintdesk/internal/shared/logger"
)

type mockTicketRepo struct {
	insertFn           func(ctx context.Context, t *ticket.Ticket) error
	listFn             func(ctx context.Context, filter ticket.Filter) ([]ticket.Summary, error)
	getDetailFn        func(ctx context.Context, id uint) (*ticket.Detail, error)
	existsFn           func(ctx context.Context, id uint) (bool, error)
	completeFn         func(ctx context.Context, id uint, resolution string, assigneeUserIDs []uint) error
	updateAttachmentFn func(ctx context.Context, id uint, att ticket.StoredAttachment) error
	getAttachmentFn    func(ctx context.Context, id uint) (*ticket.StoredAttachment, error)
	deleteFn           func(ctx context.Context, id uint) error
}

func (m *mockTicketRepo) Insert(ctx context.Context, t *ticket.Ticket) error {
	return m.insertFn(ctx, t)
}

func (m *mockTicketRepo) List(ctx context.Context, filter ticket.Filter) ([]ticket.Summary, error) {
	return m.listFn(ctx, filter)
}

func (m *mockTicketRepo) GetDetail(ctx context.Context, id uint) (*ticket.Detail, error) {
	return m.getDetailFn(ctx, id)
}

func (m *mockTicketRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return m.existsFn(ctx, id)
}

func (m *mockTicketRepo) Complete(ctx context.Context, id uint, resolution string, assigneeUserIDs []uint) error {
	return m.completeFn(ctx, id, resolution, assigneeUserIDs)
}

func (m *mockTicketRepo) UpdateAttachment(ctx context.Context, id uint, att ticket.StoredAttachment) error {
	return m.updateAttachmentFn(ctx, id, att)
}

func (m *mockTicketRepo) GetAttachment(ctx context.Context, id uint) (*ticket.StoredAttachment, error) {
	return m.getAttachmentFn(ctx, id)
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// mockTxManager runs the unit of work inline, without a database.
type mockTxManager struct {
	err    error
	called bool
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.called = true
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockAdminGuard struct {
	err     error
	checked []uint
}

func (m *mockAdminGuard) EnsureAdmin(ctx context.Context, userID uint) error {
	m.checked = append(m.checked, userID)
	return m.err
}

type mockAttachmentStore struct {
	saveFn    func(ticketID uint, filename string, r io.Reader) (*storage.StoredFile, error)
	resolveFn func(path string) (string, error)
}

func (m *mockAttachmentStore) Save(ticketID uint, filename string, r io.Reader) (*storage.StoredFile, error) {
	return m.saveFn(ticketID, filename, r)
}

func (m *mockAttachmentStore) Resolve(path string) (string, error) {
	return m.resolveFn(path)
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

func detailFixture(id uint) *ticket.Detail {
	return &ticket.Detail{
		ID:             id,
		Number:         ticket.FormatNumber(2025, id),
		Title:          "서버 점검 요청",
		Status:         ticket.StatusOpen,
		RequesterName:  "김철수",
		RequesterOrg:   "운영팀",
		RequestContent: "월간 점검 바랍니다",
	}
}
