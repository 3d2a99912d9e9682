package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// MockCommentStore implements store.CommentStore for testing.
type MockCommentStore struct {
	CreateFn  func(ctx context.Context, comment *domain.Comment) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	UpdateFn  func(ctx context.Context, comment *domain.Comment) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Comments backs the default implementation, keyed by ID.
	Comments map[uuid.UUID]*domain.Comment
}

// NewMockCommentStore creates a mock store with initialized defaults.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{Comments: make(map[uuid.UUID]*domain.Comment)}
}

// Create implements the CommentStore interface.
func (m *MockCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, comment)
	}

	m.Comments[comment.ID] = comment
	return nil
}

// GetByID implements the CommentStore interface.
func (m *MockCommentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if c, ok := m.Comments[id]; ok {
		return c, nil
	}
	return nil, store.ErrCommentNotFound
}

// Update implements the CommentStore interface.
func (m *MockCommentStore) Update(ctx context.Context, comment *domain.Comment) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, comment)
	}

	if _, ok := m.Comments[comment.ID]; !ok {
		return store.ErrCommentNotFound
	}
	m.Comments[comment.ID] = comment
	return nil
}

// Delete implements the CommentStore interface.
func (m *MockCommentStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Comments[id]; !ok {
		return store.ErrCommentNotFound
	}
	delete(m.Comments, id)
	return nil
}
