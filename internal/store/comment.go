package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
// Read operations return comments with the Author field populated.
type CommentStore interface {
	// Create saves a new comment.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID retrieves a comment by ID.
	// Returns ErrCommentNotFound if no comment matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)

	// Update persists the body of an existing comment.
	// Returns ErrCommentNotFound if the comment no longer exists.
	Update(ctx context.Context, comment *domain.Comment) error

	// Delete removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
