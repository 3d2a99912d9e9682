package domain

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+-[0-9a-z]{1,6}$`)

func newTestAuthor(t *testing.T) *User {
	t.Helper()
	user, err := NewUser("John Doe", "john@doe.me", "Pa$w0rd!")
	require.NoError(t, err)
	return user
}

func TestNewSlug(t *testing.T) {
	t.Parallel()

	s := NewSlug("My First Article!")
	assert.True(t, strings.HasPrefix(s, "my-first-article-"), "slug %q", s)
	assert.Regexp(t, slugPattern, s)

	// Equal titles must not collide.
	assert.NotEqual(t, NewSlug("Same Title"), NewSlug("Same Title"))
}

func TestNewArticle(t *testing.T) {
	t.Parallel()

	author := newTestAuthor(t)

	article, err := NewArticle("A Worthy Title", "A subtitle here", "body text",
		[]string{"go", "http"}, author)
	require.NoError(t, err)

	assert.True(t, article.Draft, "new articles start as drafts")
	assert.Equal(t, author.ID, article.AuthorID)
	assert.Same(t, author, article.Author)
	assert.Regexp(t, slugPattern, article.Slug)

	_, err = NewArticle("", "sub", "body", nil, author)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = NewArticle("Title here", "sub", "", nil, author)
	assert.ErrorIs(t, err, ErrEmptyBody)

	_, err = NewArticle("Title here", "sub", "body", nil, nil)
	assert.ErrorIs(t, err, ErrNilAuthor)
}

func TestArticleApply(t *testing.T) {
	t.Parallel()

	t.Run("nil fields leave values untouched", func(t *testing.T) {
		t.Parallel()

		article, err := NewArticle("Original Title", "Original subtitle", "original body",
			[]string{"one"}, newTestAuthor(t))
		require.NoError(t, err)
		originalSlug := article.Slug

		changed := article.Apply(ArticleUpdate{})

		assert.False(t, changed)
		assert.Equal(t, "Original Title", article.Title)
		assert.Equal(t, originalSlug, article.Slug)
		assert.Equal(t, "Original subtitle", article.Subtitle)
		assert.Equal(t, "original body", article.Body)
		assert.Equal(t, []string{"one"}, article.Tags)
	})

	t.Run("title change regenerates slug keeping suffix", func(t *testing.T) {
		t.Parallel()

		article, err := NewArticle("Original Title", "Original subtitle", "original body",
			nil, newTestAuthor(t))
		require.NoError(t, err)

		suffix := article.Slug[strings.LastIndex(article.Slug, "-"):]

		title := "Renamed Completely"
		changed := article.Apply(ArticleUpdate{Title: &title})

		assert.True(t, changed)
		assert.Equal(t, "renamed-completely"+suffix, article.Slug)
	})

	t.Run("same title does not change slug", func(t *testing.T) {
		t.Parallel()

		article, err := NewArticle("Stable Title", "Original subtitle", "original body",
			nil, newTestAuthor(t))
		require.NoError(t, err)
		originalSlug := article.Slug

		title := "Stable Title"
		changed := article.Apply(ArticleUpdate{Title: &title})

		assert.False(t, changed)
		assert.Equal(t, originalSlug, article.Slug)
	})

	t.Run("partial update merges fields", func(t *testing.T) {
		t.Parallel()

		article, err := NewArticle("Original Title", "Original subtitle", "original body",
			[]string{"one"}, newTestAuthor(t))
		require.NoError(t, err)

		body := "new body"
		changed := article.Apply(ArticleUpdate{
			Body: &body,
			Tags: []string{"two", "three"},
		})

		assert.False(t, changed)
		assert.Equal(t, "Original Title", article.Title)
		assert.Equal(t, "new body", article.Body)
		assert.Equal(t, []string{"two", "three"}, article.Tags)
	})
}

func TestArticleIsOwnedBy(t *testing.T) {
	t.Parallel()

	author := newTestAuthor(t)
	other := newTestAuthor(t)

	article, err := NewArticle("A Worthy Title", "A subtitle", "body", nil, author)
	require.NoError(t, err)

	assert.True(t, article.IsOwnedBy(author.ID))
	assert.False(t, article.IsOwnedBy(other.ID))
}
