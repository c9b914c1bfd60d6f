package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"clientbase/internal/model"
	"clientbase/internal/repository"
)

// CommentInput is the submitted field set for a new comment.
type CommentInput struct {
	Body string `json:"body" validate:"required,max=2000"`
}

// CommentService defines the use cases for client comments.
type CommentService interface {
	// Add attaches a comment to one of the user's own clients. The client
	// reference on the stored comment always comes from the resolved owned
	// record, never from raw request input.
	Add(ctx context.Context, user *model.User, clientID string, in CommentInput) (*model.Comment, error)
}

type commentService struct {
	clients  repository.ClientRepository
	comments repository.CommentRepository
}

// NewCommentService constructs a new CommentService.
func NewCommentService(clients repository.ClientRepository, comments repository.CommentRepository) CommentService {
	return &commentService{clients: clients, comments: comments}
}

func (s *commentService) Add(ctx context.Context, user *model.User, clientID string, in CommentInput) (*model.Comment, error) {
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

	c := &model.Comment{
		ID:        uuid.New().String(),
		Body:      in.Body,
		ClientID:  client.ID,
		TeamID:    user.ActiveTeamID,
		CreatedBy: user.ID,
		CreatedAt: time.Now().UTC(),
	}
	return s.comments.Create(ctx, c)
}
