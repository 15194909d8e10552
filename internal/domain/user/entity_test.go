//go:build unit

package user_test

import (
	"testing"

	"boat-reservation/internal/domain/user"
	"boat-reservation/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}),
	cmpopts.IgnoreFields(user.User{}, "id"),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		expected := user.ReconstructUser(uuid.Nil, "sailor@example.com", "Test Sailor", user.RoleGuest)
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("メールアドレス検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効なメールアドレスOK",
				mutate: func(b *builder.UserBuilder) { b.Email = "valid@example.com" },
			},
			{
				name:   "空のメールアドレスNG",
				mutate: func(b *builder.UserBuilder) { b.Email = "" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "@なしNG",
				mutate: func(b *builder.UserBuilder) { b.Email = "invalidemail.com" },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "表示名付きの形式NG",
				mutate: func(b *builder.UserBuilder) { b.Email = "Sailor <sailor@example.com>" },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("表示名検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "空白のみNG",
				mutate: func(b *builder.UserBuilder) { b.DisplayName = "   " },
				errIs:  user.ErrInvalidDisplayName,
			},
		})
	})

	t.Run("ロール検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "mentor ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "mentor" },
			},
			{
				name:   "admin ロールOK",
				mutate: func(b *builder.UserBuilder) { b.Role = "admin" },
			},
			{
				name:   "無効なロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "captain" },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "空のロールNG",
				mutate: func(b *builder.UserBuilder) { b.Role = "" },
				errIs:  user.ErrInvalidRole,
			},
		})
	})
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleMentor))
	assert.True(t, user.RoleMentor.AtLeast(user.RoleMentor))
	assert.False(t, user.RoleGuest.AtLeast(user.RoleMentor))
	assert.False(t, user.Role("captain").AtLeast(user.RoleGuest))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
