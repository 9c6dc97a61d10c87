package mocks

import (
	"context"

	"acronym-finder/internal/schemas"

	"github.com/stretchr/testify/mock"
)

// MockAcronymRepository is a mock of repositories.AcronymRepository.
type MockAcronymRepository struct {
	mock.Mock
}

func (m *MockAcronymRepository) ListAcronyms(ctx context.Context, offset, limit int) ([]*schemas.Acronym, error) {
	args := m.Called(ctx, offset, limit)
	acronyms, _ := args.Get(0).([]*schemas.Acronym)
	return acronyms, args.Error(1)
}

func (m *MockAcronymRepository) GetAcronym(ctx context.Context, id string) (*schemas.Acronym, error) {
	args := m.Called(ctx, id)
	acronym, _ := args.Get(0).(*schemas.Acronym)
	return acronym, args.Error(1)
}

func (m *MockAcronymRepository) CreateAcronym(ctx context.Context, acronym *schemas.Acronym) error {
	args := m.Called(ctx, acronym)
	return args.Error(0)
}

func (m *MockAcronymRepository) UpdateAcronym(ctx context.Context, acronym *schemas.Acronym) error {
	args := m.Called(ctx, acronym)
	return args.Error(0)
}

func (m *MockAcronymRepository) DeleteAcronym(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository is a mock of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *schemas.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*schemas.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*schemas.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) DeleteUserByUsername(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
