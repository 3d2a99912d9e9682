package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// PostgresCommentStore implements store.CommentStore on PostgreSQL.
type PostgresCommentStore struct {
	manager *Manager
	logger  *slog.Logger
}

// NewPostgresCommentStore creates a comment store reading its handle from
// manager.
func NewPostgresCommentStore(manager *Manager, logger *slog.Logger) *PostgresCommentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommentStore{
		manager: manager,
		logger:  logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentSelect = `
	SELECT c.id, c.body, c.article_id, c.author_id, c.created_at, c.updated_at,
	       u.id, u.full_name, u.display_name, u.email, u.hashed_password, u.bio,
	       u.avatar, u.created_at, u.updated_at
	FROM comments c
	JOIN users u ON u.id = c.author_id`

// Create implements store.CommentStore.Create.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO comments (id, body, article_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		comment.ID, comment.Body, comment.ArticleID, comment.AuthorID,
		comment.CreatedAt, comment.UpdatedAt,
	)
	if err != nil {
		return mapError(err, store.ErrCommentNotFound)
	}

	s.logger.DebugContext(ctx, "comment created",
		"comment_id", comment.ID, "article_id", comment.ArticleID)
	return nil
}

// GetByID implements store.CommentStore.GetByID.
func (s *PostgresCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	db, err := s.manager.DB()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, commentSelect+` WHERE c.id = $1`, id)

	var (
		c domain.Comment
		u domain.User
	)
	err = row.Scan(
		&c.ID, &c.Body, &c.ArticleID, &c.AuthorID, &c.CreatedAt, &c.UpdatedAt,
		&u.ID, &u.FullName, &u.DisplayName, &u.Email, &u.HashedPassword, &u.Bio,
		&u.Avatar, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, store.ErrCommentNotFound)
	}
	c.Author = &u

	return &c, nil
}

// Update implements store.CommentStore.Update.
func (s *PostgresCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE comments SET body = $2, updated_at = $3 WHERE id = $1`,
		comment.ID, comment.Body, comment.UpdatedAt,
	)
	if err != nil {
		return mapError(err, store.ErrCommentNotFound)
	}

	return checkRowsAffected(result, store.ErrCommentNotFound)
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return mapError(err, store.ErrCommentNotFound)
	}

	return checkRowsAffected(result, store.ErrCommentNotFound)
}
