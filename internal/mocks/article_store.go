package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// MockArticleStore implements store.ArticleStore for testing.
type MockArticleStore struct {
	CreateFn    func(ctx context.Context, article *domain.Article) error
	GetBySlugFn func(ctx context.Context, slug string) (*domain.Article, error)
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	ListFn      func(ctx context.Context, limit, offset int) ([]*domain.Article, error)
	UpdateFn    func(ctx context.Context, article *domain.Article) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error

	// Articles backs the default implementation, keyed by ID.
	Articles map[uuid.UUID]*domain.Article
}

// NewMockArticleStore creates a mock store with initialized defaults.
func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{Articles: make(map[uuid.UUID]*domain.Article)}
}

// Create implements the ArticleStore interface.
func (m *MockArticleStore) Create(ctx context.Context, article *domain.Article) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, article)
	}

	for _, a := range m.Articles {
		if a.Slug == article.Slug {
			return store.ErrSlugTaken
		}
	}
	m.Articles[article.ID] = article
	return nil
}

// GetBySlug implements the ArticleStore interface.
func (m *MockArticleStore) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}

	for _, a := range m.Articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, store.ErrArticleNotFound
}

// GetByID implements the ArticleStore interface.
func (m *MockArticleStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if a, ok := m.Articles[id]; ok {
		return a, nil
	}
	return nil, store.ErrArticleNotFound
}

// List implements the ArticleStore interface.
func (m *MockArticleStore) List(ctx context.Context, limit, offset int) ([]*domain.Article, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	all := make([]*domain.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*domain.Article{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// Update implements the ArticleStore interface.
func (m *MockArticleStore) Update(ctx context.Context, article *domain.Article) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, article)
	}

	if _, ok := m.Articles[article.ID]; !ok {
		return store.ErrArticleNotFound
	}
	m.Articles[article.ID] = article
	return nil
}

// Delete implements the ArticleStore interface.
func (m *MockArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Articles[id]; !ok {
		return store.ErrArticleNotFound
	}
	delete(m.Articles, id)
	return nil
}
