package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	t.Run("returns detail DTO", func(t *testing.T) {
		repo := &mockTicketRepo{
			getDetailFn: func(ctx context.Context, id uint) (*ticket.Detail, error) {
				d := detailFixture(id)
				d.Attachment = &ticket.AttachmentMeta{
					Name:         "report.pdf",
					MIME:         "application/pdf",
					Size:         2048,
					Downloadable: true,
				}
				return d, nil
			},
		}
		uc := NewGetTicketUseCase(repo, testLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 5})

		require.NoError(t, err)
		assert.Equal(t, uint(5), result.ID)
		assert.Equal(t, "MT-2025-000005", result.TicketNo)
		require.NotNil(t, result.AttachmentName)
		assert.Equal(t, "report.pdf", *result.AttachmentName)
		require.NotNil(t, result.AttachmentDownloadURL)
		assert.Equal(t, "/api/maintenance/5/attachment/download", *result.AttachmentDownloadURL)
	})

	t.Run("ticket id is required", func(t *testing.T) {
		uc := NewGetTicketUseCase(&mockTicketRepo{}, testLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 0})

		assert.Nil(t, result)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("not found passes through", func(t *testing.T) {
		repo := &mockTicketRepo{
			getDetailFn: func(ctx context.Context, id uint) (*ticket.Detail, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewGetTicketUseCase(repo, testLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 999})

		assert.Nil(t, result)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("non-downloadable attachment has no download url", func(t *testing.T) {
		repo := &mockTicketRepo{
			getDetailFn: func(ctx context.Context, id uint) (*ticket.Detail, error) {
				d := detailFixture(id)
				d.Attachment = &ticket.AttachmentMeta{Name: "report.pdf", Downloadable: false}
				return d, nil
			},
		}
		uc := NewGetTicketUseCase(repo, testLogger())

		result, err := uc.Execute(context.Background(), GetTicketQuery{TicketID: 5})

		require.NoError(t, err)
		require.NotNil(t, result.AttachmentName)
		assert.Nil(t, result.AttachmentDownloadURL)
	})
}
