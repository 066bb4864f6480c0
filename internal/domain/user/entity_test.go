//go:build unit

package user_test

import (
	"testing"

	"bookstore-api/internal/domain/user"
	"bookstore-api/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		firstName, _ := user.NewName("Test")
		lastName, _ := user.NewName("Reader")
		expected := user.NewUser(email, "hashed_password", firstName, lastName, "", user.RoleUser)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastAccess())
		assert.False(t, actual.IsAdmin())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "valid email", email: "valid@example.com"},
			{name: "mixed case is normalized", email: "Valid@Example.COM"},
			{name: "empty", email: "", errIs: user.ErrInvalidEmail},
			{name: "missing at sign", email: "invalidemail.com", errIs: user.ErrInvalidEmail},
			{name: "missing tld", email: "invalid@example", errIs: user.ErrInvalidEmail},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := builder.NewUserBuilder().WithEmail(tc.email).BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					return
				}
				require.NoError(t, err)
			})
		}
	})

	t.Run("role validation", func(t *testing.T) {
		u, err := builder.NewUserBuilder().AsAdmin().BuildDomain()
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())

		_, err = builder.NewUserBuilder().WithRole("superuser").BuildDomain()
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("password strength", func(t *testing.T) {
		_, err := user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		_, err = user.NewPassword("password123")
		require.NoError(t, err)
	})
}
