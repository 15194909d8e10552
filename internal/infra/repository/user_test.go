//go:build unit

package repository

import (
	"context"
	"testing"

	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/infra"
	"boat-reservation/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) ListUsersByIDs(ctx context.Context, db pgquery.DBTX, ids []uuid.UUID) ([]pgquery.UserRow, error) {
	args := m.Called(ctx, db, ids)
	rows, _ := args.Get(0).([]pgquery.UserRow)
	return rows, args.Error(1)
}

func TestFindByIDs(t *testing.T) {
	mentor, guest := uuid.New(), uuid.New()

	tests := []struct {
		name      string
		ids       []uuid.UUID
		rows      []pgquery.UserRow
		mockError error
		wantUsers map[uuid.UUID]user.Role
		wantError bool
		skipQuery bool
	}{
		{
			name: "success",
			ids:  []uuid.UUID{mentor, guest, uuid.New()},
			rows: []pgquery.UserRow{
				{ID: mentor, Email: "mentor@example.com", DisplayName: "Mia", Role: "mentor"},
				{ID: guest, Email: "guest@example.com", DisplayName: "Gus", Role: "guest"},
			},
			wantUsers: map[uuid.UUID]user.Role{mentor: user.RoleMentor, guest: user.RoleGuest},
		},
		{
			name:      "no ids",
			wantUsers: map[uuid.UUID]user.Role{},
			skipQuery: true,
		},
		{
			name:      "database error",
			ids:       []uuid.UUID{mentor},
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserQueries)
			if !tt.skipQuery {
				mockQueries.On("ListUsersByIDs", mock.Anything, mock.Anything, tt.ids).Return(tt.rows, tt.mockError)
			}

			repo := NewUserRepository(mockQueries, nil)
			users, err := repo.FindByIDs(context.Background(), tt.ids)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				require.Len(t, users, len(tt.wantUsers))
				for id, role := range tt.wantUsers {
					assert.Equal(t, role, users[id].Role())
				}
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
