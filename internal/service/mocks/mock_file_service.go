package mocks

import (
	"context"
	"io"

	"clientbase/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, user *model.User, clientID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.File, error) {
	args := m.Called(ctx, user, clientID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileService) DownloadURL(ctx context.Context, ownerID, clientID, fileID string) (string, error) {
	args := m.Called(ctx, ownerID, clientID, fileID)
	return args.String(0), args.Error(1)
}
