package mocks

import (
	"context"

	"cvapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCVRepository struct {
	mock.Mock
}

func (m *MockCVRepository) CreateActive(ctx context.Context, cv *model.CV) (*model.CV, error) {
	args := m.Called(ctx, cv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) FindByID(ctx context.Context, id string) (*model.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) FindActive(ctx context.Context) (*model.CV, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVRepository) List(ctx context.Context) ([]model.CV, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CV), args.Error(1)
}

func (m *MockCVRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
