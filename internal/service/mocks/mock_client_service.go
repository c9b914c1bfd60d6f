package mocks

import (
	"context"

	"clientbase/internal/model"
	"clientbase/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Create(ctx context.Context, owner *model.User, in service.ClientInput) (*model.Client, error) {
	args := m.Called(ctx, owner, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, ownerID string) (*service.ClientListResult, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientListResult), args.Error(1)
}

func (m *MockClientService) Get(ctx context.Context, id, ownerID string) (*service.ClientDetail, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientDetail), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, id, ownerID string, in service.ClientInput) (*model.Client, error) {
	args := m.Called(ctx, id, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockClientService) ExportCSV(ctx context.Context, ownerID string) ([]byte, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
