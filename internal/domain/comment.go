package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Comment is attached to an article. Edits are permitted to the comment's
// author only; deletion is also permitted to the owning article's author.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Body      string    `json:"body"`
	ArticleID uuid.UUID `json:"-"`
	AuthorID  uuid.UUID `json:"-"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewComment creates a comment on article authored by author.
func NewComment(body string, article *Article, author *User) (*Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if article == nil || author == nil {
		return nil, ErrNilAuthor
	}

	now := time.Now().UTC()
	return &Comment{
		ID:        uuid.New(),
		Body:      body,
		ArticleID: article.ID,
		AuthorID:  author.ID,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsOwnedBy reports whether user authored the comment.
func (c *Comment) IsOwnedBy(userID uuid.UUID) bool {
	return c.AuthorID == userID
}
