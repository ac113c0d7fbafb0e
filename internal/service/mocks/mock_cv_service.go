package mocks

import (
	"context"
	"io"

	"cvapi/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCVService struct {
	mock.Mock
}

func (m *MockCVService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.CV, error) {
	args := m.Called(ctx, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVService) GetActive(ctx context.Context) (*model.CV, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}

func (m *MockCVService) GetFile(ctx context.Context) (io.ReadCloser, *model.CV, error) {
	args := m.Called(ctx)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var cv *model.CV
	if args.Get(1) != nil {
		cv = args.Get(1).(*model.CV)
	}
	return rc, cv, args.Error(2)
}

func (m *MockCVService) List(ctx context.Context) ([]model.CV, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CV), args.Error(1)
}

func (m *MockCVService) Delete(ctx context.Context, id string) (*model.CV, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CV), args.Error(1)
}
