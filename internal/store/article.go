package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
)

// ArticleStore defines the interface for article persistence.
// Read operations return articles with the Author field populated.
type ArticleStore interface {
	// Create saves a new article.
	// Returns ErrSlugTaken if the slug is already in use.
	Create(ctx context.Context, article *domain.Article) error

	// GetBySlug retrieves an article by its slug.
	// Returns ErrArticleNotFound if no article matches.
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)

	// GetByID retrieves an article by ID.
	// Returns ErrArticleNotFound if no article matches.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)

	// List returns a page of articles, newest first.
	List(ctx context.Context, limit, offset int) ([]*domain.Article, error)

	// Update persists the mutable fields of an existing article.
	// Returns ErrArticleNotFound if the article no longer exists.
	Update(ctx context.Context, article *domain.Article) error

	// Delete removes an article and its comments.
	// Returns ErrArticleNotFound if the article does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
