package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stylino/storefront/auth"
	stylino_errors "github.com/stylino/storefront/errors"
	"github.com/stylino/storefront/model"
	stylino_mock "github.com/stylino/storefront/test/mock"
)

func newGuard(t *testing.T) (*auth.Guard, *stylino_mock.MockSessionResolver, *stylino_mock.MockPrincipalStore) {
	t.Helper()
	sessions := new(stylino_mock.MockSessionResolver)
	principals := new(stylino_mock.MockPrincipalStore)
	t.Cleanup(func() {
		sessions.AssertExpectations(t)
		principals.AssertExpectations(t)
	})
	return auth.NewGuard(sessions, principals), sessions, principals
}

func withSession(sessions *stylino_mock.MockSessionResolver, subjectID string) {
	sessions.On("ResolveSession", mock.Anything, mock.Anything).
		Return(&auth.Session{Token: "tok", SubjectID: subjectID}, nil)
}

func request() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/admin/users", nil)
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()

	t.Run("NoSession_Unauthenticated", func(t *testing.T) {
		guard, sessions, _ := newGuard(t)
		sessions.On("ResolveSession", mock.Anything, mock.Anything).Return(nil, nil)

		decision, err := guard.RequireAdmin(ctx, request())
		require.NoError(t, err)
		assert.False(t, decision.OK())
		assert.Equal(t, auth.Unauthenticated, decision.Outcome)
		require.NotNil(t, decision.Denial)
		assert.Equal(t, http.StatusUnauthorized, decision.Denial.Status)
		assert.Equal(t, auth.MessageUnauthenticated, decision.Denial.Body.Error)
		assert.Nil(t, decision.Principal)
	})

	t.Run("MissingPrincipal_Unauthenticated", func(t *testing.T) {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "deleted-user")
		principals.On("FindPrincipal", mock.Anything, "deleted-user").
			Return(nil, stylino_errors.ErrUserNotFound)

		decision, err := guard.RequireAdmin(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, auth.Unauthenticated, decision.Outcome)
		assert.Equal(t, http.StatusUnauthorized, decision.Denial.Status)
	})

	t.Run("BlockedAdmin_Blocked", func(t *testing.T) {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "u1")
		principals.On("FindPrincipal", mock.Anything, "u1").
			Return(&auth.Principal{ID: "u1", Role: model.RoleAdmin, IsBlocked: true}, nil)

		decision, err := guard.RequireAdmin(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, auth.Blocked, decision.Outcome)
		assert.Equal(t, http.StatusForbidden, decision.Denial.Status)
		assert.Equal(t, auth.MessageBlocked, decision.Denial.Body.Error)
	})

	t.Run("BlockedCustomer_BlockedNotForbidden", func(t *testing.T) {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "u2")
		principals.On("FindPrincipal", mock.Anything, "u2").
			Return(&auth.Principal{ID: "u2", Role: model.RoleCustomer, IsBlocked: true}, nil)

		decision, err := guard.RequireAdmin(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, auth.Blocked, decision.Outcome)
	})

	t.Run("WrongRole_Forbidden", func(t *testing.T) {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "u3")
		principals.On("FindPrincipal", mock.Anything, "u3").
			Return(&auth.Principal{ID: "u3", Role: model.RoleCustomer}, nil)

		decision, err := guard.RequireAdmin(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, auth.Forbidden, decision.Outcome)
		assert.Equal(t, http.StatusForbidden, decision.Denial.Status)
		assert.Equal(t, auth.MessageForbidden, decision.Denial.Body.Error)
	})

	t.Run("Admin_Authorized", func(t *testing.T) {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "admin-1")
		principals.On("FindPrincipal", mock.Anything, "admin-1").
			Return(&auth.Principal{ID: "admin-1", Role: model.RoleAdmin}, nil)

		decision, err := guard.RequireAdmin(ctx, request())
		require.NoError(t, err)
		assert.True(t, decision.OK())
		assert.Nil(t, decision.Denial)
		require.NotNil(t, decision.Principal)
		assert.Equal(t, "admin-1", decision.Principal.ID)
		assert.Equal(t, model.RoleAdmin, decision.Principal.Role)
		assert.False(t, decision.Principal.IsBlocked)
	})

	t.Run("SessionResolverFailure_Error", func(t *testing.T) {
		guard, sessions, _ := newGuard(t)
		boom := errors.New("redis down")
		sessions.On("ResolveSession", mock.Anything, mock.Anything).Return(nil, boom)

		_, err := guard.RequireAdmin(ctx, request())
		assert.ErrorIs(t, err, boom)
	})

	t.Run("PrincipalStoreFailure_Error", func(t *testing.T) {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "u4")
		boom := errors.New("connection refused")
		principals.On("FindPrincipal", mock.Anything, "u4").Return(nil, boom)

		_, err := guard.RequireAdmin(ctx, request())
		assert.ErrorIs(t, err, boom)
	})
}

func TestRequireAffiliate(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		role    model.Role
		outcome auth.Outcome
	}{
		{"Affiliate", model.RoleAffiliate, auth.Authorized},
		{"Admin", model.RoleAdmin, auth.Authorized},
		{"Customer", model.RoleCustomer, auth.Forbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			guard, sessions, principals := newGuard(t)
			withSession(sessions, "u")
			principals.On("FindPrincipal", mock.Anything, "u").
				Return(&auth.Principal{ID: "u", Role: tc.role}, nil)

			decision, err := guard.RequireAffiliate(ctx, request())
			require.NoError(t, err)
			assert.Equal(t, tc.outcome, decision.Outcome)
		})
	}
}

func TestRequireCustomerAdmitsEveryRole(t *testing.T) {
	ctx := context.Background()

	for _, role := range []model.Role{model.RoleCustomer, model.RoleAffiliate, model.RoleAdmin} {
		guard, sessions, principals := newGuard(t)
		withSession(sessions, "u")
		principals.On("FindPrincipal", mock.Anything, "u").
			Return(&auth.Principal{ID: "u", Role: role}, nil)

		decision, err := guard.RequireCustomer(ctx, request())
		require.NoError(t, err)
		assert.True(t, decision.OK(), string(role))
	}
}

func TestAuthorizeWithoutRequiredRolesIsForbidden(t *testing.T) {
	guard, sessions, principals := newGuard(t)
	withSession(sessions, "u")
	principals.On("FindPrincipal", mock.Anything, "u").
		Return(&auth.Principal{ID: "u", Role: model.RoleAdmin}, nil)

	decision, err := guard.Authorize(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, auth.Forbidden, decision.Outcome)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "authorized", auth.Authorized.String())
	assert.Equal(t, "blocked", auth.Blocked.String())
	assert.Equal(t, "outcome(9)", auth.Outcome(9).String())
}
