package mocks

import (
	"context"

	"clientbase/internal/model"
	"clientbase/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Add(ctx context.Context, user *model.User, clientID string, in service.CommentInput) (*model.Comment, error) {
	args := m.Called(ctx, user, clientID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}
