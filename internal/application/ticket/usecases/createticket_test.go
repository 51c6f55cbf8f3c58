package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintdesk/internal/domain/ticket"
	"maintdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute_Success(t *testing.T) {
	repo := &mockTicketRepo{
		insertFn: func(ctx context.Context, draft *ticket.Ticket) error {
			require.NoError(t, draft.SetID(42))
			return draft.SetNumber(ticket.FormatNumber(2025, 42))
		},
		getDetailFn: func(ctx context.Context, id uint) (*ticket.Detail, error) {
			assert.Equal(t, uint(42), id)
			return detailFixture(id), nil
		},
	}
	tm := &mockTxManager{}
	uc := NewCreateTicketUseCase(repo, tm, testLogger())

	creator := uint(3)
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:           "서버 점검 요청",
		RequesterName:   "김철수",
		RequesterOrg:    "운영팀",
		RequesterPhone:  "010-1234-5678",
		RequestContent:  "월간 점검 바랍니다",
		CreatedByUserID: &creator,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(42), result.ID)
	assert.Equal(t, "MT-2025-000042", result.TicketNo)
	assert.True(t, tm.called)
}

func TestCreateTicketUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{
			name: "missing title",
			cmd:  CreateTicketCommand{RequestContent: "내용"},
		},
		{
			name: "blank title",
			cmd:  CreateTicketCommand{Title: "   ", RequestContent: "내용"},
		},
		{
			name: "missing request content",
			cmd:  CreateTicketCommand{Title: "제목"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := &mockTxManager{}
			uc := NewCreateTicketUseCase(&mockTicketRepo{}, tm, testLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.False(t, tm.called)
		})
	}
}

func TestCreateTicketUseCase_Execute_InsertFailure(t *testing.T) {
	repo := &mockTicketRepo{
		insertFn: func(ctx context.Context, draft *ticket.Ticket) error {
			return errors.NewValidationError("cannot create ticket: the clients table has no rows, or the tickets.client_id NOT NULL constraint is active and would reject the insert")
		},
	}
	uc := NewCreateTicketUseCase(repo, &mockTxManager{}, testLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Title:          "제목",
		RequestContent: "내용",
	})

	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
}
