package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// PostgresArticleStore implements store.ArticleStore on PostgreSQL.
// Reads join the authoring user so returned articles carry a populated
// Author.
type PostgresArticleStore struct {
	manager *Manager
	logger  *slog.Logger
}

// NewPostgresArticleStore creates an article store reading its handle from
// manager.
func NewPostgresArticleStore(manager *Manager, logger *slog.Logger) *PostgresArticleStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresArticleStore{
		manager: manager,
		logger:  logger.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

const articleSelect = `
	SELECT a.id, a.title, a.slug, a.subtitle, a.draft, a.body, a.tags, a.author_id,
	       a.created_at, a.updated_at,
	       u.id, u.full_name, u.display_name, u.email, u.hashed_password, u.bio,
	       u.avatar, u.created_at, u.updated_at
	FROM articles a
	JOIN users u ON u.id = a.author_id`

// Create implements store.ArticleStore.Create.
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO articles (id, title, slug, subtitle, draft, body, tags, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		article.ID, article.Title, article.Slug, article.Subtitle, article.Draft,
		article.Body, tags, article.AuthorID, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return mapError(err, store.ErrArticleNotFound)
	}

	s.logger.DebugContext(ctx, "article created", "article_id", article.ID, "slug", article.Slug)
	return nil
}

// GetBySlug implements store.ArticleStore.GetBySlug.
func (s *PostgresArticleStore) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	db, err := s.manager.DB()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, articleSelect+` WHERE a.slug = $1`, slug)
	return scanArticle(row)
}

// GetByID implements store.ArticleStore.GetByID.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	db, err := s.manager.DB()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, articleSelect+` WHERE a.id = $1`, id)
	return scanArticle(row)
}

// List implements store.ArticleStore.List.
func (s *PostgresArticleStore) List(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	db, err := s.manager.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx,
		articleSelect+` ORDER BY a.created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, mapError(err, store.ErrArticleNotFound)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*domain.Article, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, store.ErrArticleNotFound)
	}

	return articles, nil
}

// Update implements store.ArticleStore.Update.
func (s *PostgresArticleStore) Update(ctx context.Context, article *domain.Article) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	result, err := db.ExecContext(ctx, `
		UPDATE articles
		SET title = $2, slug = $3, subtitle = $4, draft = $5, body = $6, tags = $7, updated_at = $8
		WHERE id = $1`,
		article.ID, article.Title, article.Slug, article.Subtitle, article.Draft,
		article.Body, tags, article.UpdatedAt,
	)
	if err != nil {
		return mapError(err, store.ErrArticleNotFound)
	}

	return checkRowsAffected(result, store.ErrArticleNotFound)
}

// Delete implements store.ArticleStore.Delete. Comments are removed by the
// ON DELETE CASCADE constraint.
func (s *PostgresArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return mapError(err, store.ErrArticleNotFound)
	}

	return checkRowsAffected(result, store.ErrArticleNotFound)
}

func scanArticle(row rowScanner) (*domain.Article, error) {
	var (
		a    domain.Article
		u    domain.User
		tags []byte
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Subtitle, &a.Draft, &a.Body, &tags, &a.AuthorID,
		&a.CreatedAt, &a.UpdatedAt,
		&u.ID, &u.FullName, &u.DisplayName, &u.Email, &u.HashedPassword, &u.Bio,
		&u.Avatar, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, store.ErrArticleNotFound)
	}

	if err := json.Unmarshal(tags, &a.Tags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	a.Author = &u

	return &a, nil
}
