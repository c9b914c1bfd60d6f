package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"clientbase/internal/model"
	repoMocks "clientbase/internal/repository/mocks"
	storeMocks "clientbase/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testOwner = &model.User{
	ID:           "owner-id",
	Email:        "alice@example.com",
	ActiveTeamID: "team-id",
}

func TestClientService_Create(t *testing.T) {
	ctx := context.Background()

	mClients := new(repoMocks.MockClientRepository)
	svc := NewClientService(mClients, nil, nil, nil)

	mClients.On("Create", ctx, mock.MatchedBy(func(c *model.Client) bool {
		// ownership is forced from the authenticated user, not the payload
		return c.CreatedBy == "owner-id" && c.TeamID == "team-id" &&
			c.Name == "Acme" && c.ID != "" && !c.CreatedAt.IsZero()
	})).Return(&model.Client{ID: "gen-id", Name: "Acme", CreatedBy: "owner-id"}, nil)

	out, err := svc.Create(ctx, testOwner, ClientInput{Name: "Acme", Description: "widgets"})

	assert.NoError(t, err)
	assert.Equal(t, "owner-id", out.CreatedBy)
	mClients.AssertExpectations(t)
}

func TestClientService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mClients *repoMocks.MockClientRepository, mComments *repoMocks.MockCommentRepository, mFiles *repoMocks.MockFileRepository)
		wantErr    error
		checkRes   func(t *testing.T, d *ClientDetail)
	}{
		{
			name: "happy path with comments and files",
			id:   "client-id",
			setupMocks: func(mClients *repoMocks.MockClientRepository, mComments *repoMocks.MockCommentRepository, mFiles *repoMocks.MockFileRepository) {
				mClients.On("FindByID", ctx, "client-id", "owner-id").
					Return(&model.Client{ID: "client-id", Name: "Acme"}, nil)
				mComments.On("ListByClient", ctx, "client-id").
					Return([]model.Comment{{ID: "c1", Body: "note"}}, nil)
				mFiles.On("ListByClient", ctx, "client-id").
					Return([]model.File{{ID: "f1", Filename: "a.pdf"}}, nil)
			},
			checkRes: func(t *testing.T, d *ClientDetail) {
				assert.Equal(t, "Acme", d.Client.Name)
				assert.Len(t, d.Comments, 1)
				assert.Len(t, d.Files, 1)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(*repoMocks.MockClientRepository, *repoMocks.MockCommentRepository, *repoMocks.MockFileRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "foreign-owned maps to not found",
			id:   "client-id",
			setupMocks: func(mClients *repoMocks.MockClientRepository, mComments *repoMocks.MockCommentRepository, mFiles *repoMocks.MockFileRepository) {
				mClients.On("FindByID", ctx, "client-id", "owner-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "generic repository error",
			id:   "client-id",
			setupMocks: func(mClients *repoMocks.MockClientRepository, mComments *repoMocks.MockCommentRepository, mFiles *repoMocks.MockFileRepository) {
				mClients.On("FindByID", ctx, "client-id", "owner-id").Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mClients := new(repoMocks.MockClientRepository)
			mComments := new(repoMocks.MockCommentRepository)
			mFiles := new(repoMocks.MockFileRepository)
			svc := NewClientService(mClients, mComments, mFiles, nil)

			tt.setupMocks(mClients, mComments, mFiles)

			d, err := svc.Get(ctx, tt.id, "owner-id")

			if tt.wantErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, d)
				}
			}
			mClients.AssertExpectations(t)
			mComments.AssertExpectations(t)
			mFiles.AssertExpectations(t)
		})
	}
}

func TestClientService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		mClients.On("Update", ctx, mock.MatchedBy(func(c *model.Client) bool {
			return c.ID == "client-id" && c.CreatedBy == "owner-id" && c.Name == "Acme Ltd"
		})).Return(&model.Client{ID: "client-id", Name: "Acme Ltd"}, nil)

		out, err := svc.Update(ctx, "client-id", "owner-id", ClientInput{Name: "Acme Ltd"})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Ltd", out.Name)
		mClients.AssertExpectations(t)
	})

	t.Run("not owned maps to not found", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		mClients.On("Update", ctx, mock.Anything).Return(nil, sql.ErrNoRows)

		_, err := svc.Update(ctx, "client-id", "other-user", ClientInput{Name: "Acme Ltd"})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClientService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes storage objects then the row", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		mFiles := new(repoMocks.MockFileRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewClientService(mClients, nil, mFiles, mStore)

		mClients.On("FindByID", ctx, "client-id", "owner-id").
			Return(&model.Client{ID: "client-id"}, nil)
		mFiles.On("ListByClient", ctx, "client-id").
			Return([]model.File{
				{ID: "f1", StoragePath: "attachments/a.pdf"},
				{ID: "f2", StoragePath: "attachments/b.pdf"},
			}, nil)
		mStore.On("Delete", ctx, "attachments/a.pdf").Return(nil)
		mStore.On("Delete", ctx, "attachments/b.pdf").Return(nil)
		mClients.On("Delete", ctx, "client-id", "owner-id").Return(nil)

		err := svc.Delete(ctx, "client-id", "owner-id")

		assert.NoError(t, err)
		mClients.AssertExpectations(t)
		mFiles.AssertExpectations(t)
		mStore.AssertExpectations(t)
	})

	t.Run("storage failure keeps the rows", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		mFiles := new(repoMocks.MockFileRepository)
		mStore := new(storeMocks.MockStorage)
		svc := NewClientService(mClients, nil, mFiles, mStore)

		mClients.On("FindByID", ctx, "client-id", "owner-id").
			Return(&model.Client{ID: "client-id"}, nil)
		mFiles.On("ListByClient", ctx, "client-id").
			Return([]model.File{{ID: "f1", StoragePath: "attachments/a.pdf"}}, nil)
		mStore.On("Delete", ctx, "attachments/a.pdf").Return(errors.New("storage down"))

		err := svc.Delete(ctx, "client-id", "owner-id")

		assert.Error(t, err)
		mClients.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("foreign-owned id alters nothing", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		mClients.On("FindByID", ctx, "client-id", "other-user").Return(nil, sql.ErrNoRows)

		err := svc.Delete(ctx, "client-id", "other-user")

		assert.ErrorIs(t, err, ErrNotFound)
		mClients.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClientService_ExportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("exact output", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		t1 := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
		t2 := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
		mClients.On("ListByOwner", ctx, "owner-id").Return([]model.Client{
			{Name: "Acme", Description: "desc1", CreatedAt: t1, CreatedByEmail: "alice@example.com"},
			{Name: "Beta", Description: "desc2", CreatedAt: t2, CreatedByEmail: "alice@example.com"},
		}, nil)

		out, err := svc.ExportCSV(ctx, "owner-id")
		require.NoError(t, err)

		want := "Client,Description,Created at,Created by\n" +
			"Acme,desc1,2026-01-02T15:04:05Z,alice@example.com\n" +
			"Beta,desc2,2026-02-03T10:00:00Z,alice@example.com\n"
		assert.Equal(t, want, string(out))
	})

	t.Run("empty list exports only the header", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		mClients.On("ListByOwner", ctx, "owner-id").Return([]model.Client{}, nil)

		out, err := svc.ExportCSV(ctx, "owner-id")
		require.NoError(t, err)
		assert.Equal(t, "Client,Description,Created at,Created by\n", string(out))
	})

	t.Run("fields with commas are quoted", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		mClients.On("ListByOwner", ctx, "owner-id").Return([]model.Client{
			{Name: "Acme, Inc.", Description: "big", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), CreatedByEmail: "alice@example.com"},
		}, nil)

		out, err := svc.ExportCSV(ctx, "owner-id")
		require.NoError(t, err)
		assert.Contains(t, string(out), `"Acme, Inc.",big,`)
	})

	t.Run("repository error", func(t *testing.T) {
		mClients := new(repoMocks.MockClientRepository)
		svc := NewClientService(mClients, nil, nil, nil)

		mClients.On("ListByOwner", ctx, "owner-id").Return(nil, errors.New("db fail"))

		_, err := svc.ExportCSV(ctx, "owner-id")
		assert.Error(t, err)
	})
}

func TestClientService_List(t *testing.T) {
	ctx := context.Background()

	mClients := new(repoMocks.MockClientRepository)
	svc := NewClientService(mClients, nil, nil, nil)

	mClients.On("ListByOwner", ctx, "owner-id").Return([]model.Client{{ID: "1"}, {ID: "2"}}, nil)

	res, err := svc.List(ctx, "owner-id")

	assert.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 2, res.Total)
}
