package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"clientbase/internal/model"
	"clientbase/internal/repository"
	"clientbase/internal/storage"
)

var ErrReaderNil = errors.New("reader is nil")

// downloadURLExpiry bounds how long a presigned attachment link stays valid.
const downloadURLExpiry = 15 * time.Minute

// FileService defines the use cases for client file attachments.
type FileService interface {
	// Upload streams the content to object storage, saves metadata to DB, and
	// rolls back the object if the DB save fails. The attachment is keyed to
	// the resolved owned client, not the raw path parameter.
	// originalFilename is kept for display; the object key is UUID + extension.
	Upload(ctx context.Context, user *model.User, clientID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.File, error)

	// DownloadURL returns a time-limited presigned URL for an attachment of
	// one of the owner's clients.
	DownloadURL(ctx context.Context, ownerID, clientID, fileID string) (string, error)
}

type fileService struct {
	clients repository.ClientRepository
	files   repository.FileRepository
	store   storage.Storage
}

// NewFileService constructs a new FileService.
func NewFileService(clients repository.ClientRepository, files repository.FileRepository, store storage.Storage) FileService {
	return &fileService{clients: clients, files: files, store: store}
}

func (s *fileService) Upload(ctx context.Context, user *model.User, clientID string, r io.Reader, originalFilename string, contentType string, size int64) (*model.File, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if clientID == "" {
		return nil, ErrIDRequired
	}

	client, err := s.clients.FindByID(ctx, clientID, user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Generate object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("attachments", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	f := &model.File{
		ID:          uuid.New().String(),
		Filename:    originalFilename,
		StoragePath: objInfo.Key,
		Size:        objInfo.Size,
		ContentType: objInfo.ContentType,
		ClientID:    client.ID,
		TeamID:      user.ActiveTeamID,
		CreatedBy:   user.ID,
		CreatedAt:   time.Now().UTC(),
	}
	stored, err := s.files.Create(ctx, f)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *fileService) DownloadURL(ctx context.Context, ownerID, clientID, fileID string) (string, error) {
	if clientID == "" || fileID == "" {
		return "", ErrIDRequired
	}

	client, err := s.clients.FindByID(ctx, clientID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	f, err := s.files.FindByID(ctx, fileID, client.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	return s.store.PresignGet(ctx, f.StoragePath, downloadURLExpiry)
}
