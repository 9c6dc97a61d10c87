package mocks

import (
	"context"

	"acronym-finder/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// MockDatabaseManager is a mock of managers.DatabaseMgr.
type MockDatabaseManager struct {
	mock.Mock
}

func (m *MockDatabaseManager) Acronyms() repositories.AcronymRepository {
	args := m.Called()
	return args.Get(0).(repositories.AcronymRepository)
}

func (m *MockDatabaseManager) Users() repositories.UserRepository {
	args := m.Called()
	return args.Get(0).(repositories.UserRepository)
}

func (m *MockDatabaseManager) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDatabaseManager) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
