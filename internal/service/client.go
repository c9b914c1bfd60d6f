package service

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clientbase/internal/model"
	"clientbase/internal/repository"
	"clientbase/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("client not found")
)

// ClientInput is the submitted field set for creating or editing a client.
// Ownership fields are deliberately absent: created_by and team are always
// forced from the authenticated user, never taken from the payload.
type ClientInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

// ClientListResult is the service-level DTO for a user's client list.
type ClientListResult struct {
	Items []model.Client `json:"data"`
	Total int            `json:"total"`
}

// ClientDetail bundles a client with its comments and file attachments.
type ClientDetail struct {
	Client   *model.Client   `json:"client"`
	Comments []model.Comment `json:"comments"`
	Files    []model.File    `json:"files"`
}

// ClientService defines the use cases for managing a user's clients.
// Every operation is scoped to the requesting owner: clients created by
// other users are indistinguishable from missing ones (ErrNotFound).
type ClientService interface {
	// Create stores a new client attributed to the owner and their active team.
	Create(ctx context.Context, owner *model.User, in ClientInput) (*model.Client, error)

	// List returns all of the owner's clients in insertion order.
	List(ctx context.Context, ownerID string) (*ClientListResult, error)

	// Get returns one owned client together with its comments and files.
	Get(ctx context.Context, id, ownerID string) (*ClientDetail, error)

	// Update replaces name and description of an owned client.
	Update(ctx context.Context, id, ownerID string, in ClientInput) (*model.Client, error)

	// Delete removes an owned client, its comments and files, and the files'
	// objects in storage.
	Delete(ctx context.Context, id, ownerID string) error

	// ExportCSV renders the owner's client list as a CSV document.
	ExportCSV(ctx context.Context, ownerID string) ([]byte, error)
}

// clientService is a concrete implementation of ClientService.
type clientService struct {
	clients  repository.ClientRepository
	comments repository.CommentRepository
	files    repository.FileRepository
	store    storage.Storage
}

// NewClientService constructs a new ClientService.
func NewClientService(
	clients repository.ClientRepository,
	comments repository.CommentRepository,
	files repository.FileRepository,
	store storage.Storage,
) ClientService {
	return &clientService{clients: clients, comments: comments, files: files, store: store}
}

func (s *clientService) Create(ctx context.Context, owner *model.User, in ClientInput) (*model.Client, error) {
	c := &model.Client{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		TeamID:      owner.ActiveTeamID,
		CreatedBy:   owner.ID,
		CreatedAt:   time.Now().UTC(),
	}
	return s.clients.Create(ctx, c)
}

func (s *clientService) List(ctx context.Context, ownerID string) (*ClientListResult, error) {
	items, err := s.clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &ClientListResult{Items: items, Total: len(items)}, nil
}

func (s *clientService) Get(ctx context.Context, id, ownerID string) (*ClientDetail, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.clients.FindByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	comments, err := s.comments.ListByClient(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	files, err := s.files.ListByClient(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &ClientDetail{Client: c, Comments: comments, Files: files}, nil
}

func (s *clientService) Update(ctx context.Context, id, ownerID string, in ClientInput) (*model.Client, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	out, err := s.clients.Update(ctx, &model.Client{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   ownerID,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Delete removes the files' storage objects first, then the client row;
// comment and file rows go with it via ON DELETE CASCADE. A storage failure
// keeps the DB rows so no metadata is lost for objects still in the bucket.
func (s *clientService) Delete(ctx context.Context, id, ownerID string) error {
	if id == "" {
		return ErrIDRequired
	}
	c, err := s.clients.FindByID(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	files, err := s.files.ListByClient(ctx, c.ID)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := s.store.Delete(ctx, f.StoragePath); err != nil {
			return fmt.Errorf("delete storage object %s: %w", f.StoragePath, err)
		}
	}

	if err := s.clients.Delete(ctx, c.ID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// csvExportHeader is the fixed header row of the client export.
var csvExportHeader = []string{"Client", "Description", "Created at", "Created by"}

func (s *clientService) ExportCSV(ctx context.Context, ownerID string) ([]byte, error) {
	items, err := s.clients.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvExportHeader); err != nil {
		return nil, err
	}
	for _, c := range items {
		row := []string{
			c.Name,
			c.Description,
			c.CreatedAt.UTC().Format(time.RFC3339),
			c.CreatedByEmail,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
