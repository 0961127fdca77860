// test/mock/auth.go
package mock

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/stylino/storefront/auth"
)

// MockSessionResolver is a mock implementation of auth.SessionResolver
type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) ResolveSession(ctx context.Context, r *http.Request) (*auth.Session, error) {
	args := m.Called(ctx, r)
	session, _ := args.Get(0).(*auth.Session)
	return session, args.Error(1)
}

// MockPrincipalStore is a mock implementation of auth.PrincipalStore
type MockPrincipalStore struct {
	mock.Mock
}

func (m *MockPrincipalStore) FindPrincipal(ctx context.Context, subjectID string) (*auth.Principal, error) {
	args := m.Called(ctx, subjectID)
	principal, _ := args.Get(0).(*auth.Principal)
	return principal, args.Error(1)
}
