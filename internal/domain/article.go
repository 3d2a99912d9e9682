package domain

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Article is an owned resource: every mutation must be authorized against
// AuthorID. Author is populated on reads for serialization and is never
// written back.
type Article struct {
	ID        uuid.UUID `json:"-"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Subtitle  string    `json:"subtitle"`
	Draft     bool      `json:"draft"`
	Body      string    `json:"body"`
	Tags      []string  `json:"tags"`
	AuthorID  uuid.UUID `json:"-"`
	Author    *User     `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ArticleUpdate carries the allow-listed mutable fields of an article.
// Nil fields are left untouched; this is an explicit field-by-field merge,
// never a raw property loop over the request body.
type ArticleUpdate struct {
	Title    *string
	Subtitle *string
	Body     *string
	Tags     []string
}

// NewArticle creates a draft article owned by author. The slug is derived
// from the title plus a short random suffix so that equal titles never
// collide.
func NewArticle(title, subtitle, body string, tags []string, author *User) (*Article, error) {
	switch {
	case strings.TrimSpace(title) == "":
		return nil, ErrEmptyTitle
	case strings.TrimSpace(body) == "":
		return nil, ErrEmptyBody
	case author == nil:
		return nil, ErrNilAuthor
	}

	now := time.Now().UTC()
	return &Article{
		ID:        uuid.New(),
		Title:     title,
		Slug:      NewSlug(title),
		Subtitle:  subtitle,
		Draft:     true,
		Body:      body,
		Tags:      tags,
		AuthorID:  author.ID,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Apply merges upd into the article. When the title changes the slug is
// regenerated from the new title while keeping the original random suffix,
// so renames stay stable. It reports whether the slug changed.
func (a *Article) Apply(upd ArticleUpdate) (slugChanged bool) {
	if upd.Title != nil && *upd.Title != a.Title {
		a.Title = *upd.Title
		a.Slug = slug.Make(a.Title) + slugSuffix(a.Slug)
		slugChanged = true
	}
	if upd.Subtitle != nil {
		a.Subtitle = *upd.Subtitle
	}
	if upd.Body != nil {
		a.Body = *upd.Body
	}
	if upd.Tags != nil {
		a.Tags = upd.Tags
	}
	a.UpdatedAt = time.Now().UTC()

	return slugChanged
}

// IsOwnedBy reports whether user is the author of the article.
func (a *Article) IsOwnedBy(userID uuid.UUID) bool {
	return a.AuthorID == userID
}

const slugHashSpace = 36 * 36 * 36 * 36 * 36 * 36 // six base36 characters

// NewSlug slugifies title and appends a random base36 suffix.
func NewSlug(title string) string {
	return slug.Make(title) + "-" + strconv.FormatUint(rand.Uint64N(slugHashSpace), 36)
}

// slugSuffix extracts the trailing "-hash" segment of an existing slug.
func slugSuffix(s string) string {
	if i := strings.LastIndex(s, "-"); i >= 0 {
		return s[i:]
	}
	return s
}
