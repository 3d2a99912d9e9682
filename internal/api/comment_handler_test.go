package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/mocks"
)

type commentFixture struct {
	handler  *CommentHandler
	comments *mocks.MockCommentStore
	articles *mocks.MockArticleStore

	articleAuthor *domain.User
	commenter     *domain.User
	stranger      *domain.User
	article       *domain.Article
	comment       *domain.Comment
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()

	f := &commentFixture{
		comments:      mocks.NewMockCommentStore(),
		articles:      mocks.NewMockArticleStore(),
		articleAuthor: newUser(t, "Article Author", "author@example.com"),
		commenter:     newUser(t, "Busy Commenter", "commenter@example.com"),
		stranger:      newUser(t, "Total Stranger", "stranger@example.com"),
	}
	f.handler = NewCommentHandler(f.comments, f.articles, testLogger())
	f.article = seedArticle(t, f.articles, f.articleAuthor)

	comment, err := domain.NewComment("first!", f.article, f.commenter)
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(context.Background(), comment))
	f.comment = comment

	return f
}

func (f *commentFixture) request(method string, principal *domain.User) *http.Request {
	req := withRouteParams(
		httptest.NewRequest(method,
			"/api/articles/"+f.article.Slug+"/comments/"+f.comment.ID.String(), nil),
		map[string]string{"slug": f.article.Slug, "id": f.comment.ID.String()})
	if principal != nil {
		req = withPrincipal(req, principal)
	}
	return req
}

func TestCommentCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates on an existing article", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		req := withRouteParams(
			httptest.NewRequest(http.MethodPost, "/api/articles/"+f.article.Slug+"/comments", nil),
			map[string]string{"slug": f.article.Slug})
		req = withPrincipal(req, f.commenter)
		req = withBody(req, &CommentRequest{Body: "well said"})

		rec := httptest.NewRecorder()
		require.NoError(t, f.handler.Create(rec, req))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "well said", decodeJSON(t, rec)["body"])
		assert.Len(t, f.comments.Comments, 2)
	})

	t.Run("unknown article is 404 naming the slug", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		req := withRouteParams(
			httptest.NewRequest(http.MethodPost, "/api/articles/missing-slug/comments", nil),
			map[string]string{"slug": "missing-slug"})
		req = withPrincipal(req, f.commenter)
		req = withBody(req, &CommentRequest{Body: "well said"})

		err := f.handler.Create(httptest.NewRecorder(), req)
		apiErr := requireAPIError(t, err, http.StatusNotFound)
		assert.Equal(t, "Not found any article with slug: missing-slug", apiErr.Message)
	})
}

func TestCommentGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		rec := httptest.NewRecorder()
		require.NoError(t, f.handler.Get(rec, f.request(http.MethodGet, nil)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, f.comment.ID.String(), decodeJSON(t, rec)["id"])
	})

	t.Run("malformed id is 400 not 404", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		req := withRouteParams(
			httptest.NewRequest(http.MethodGet, "/api/articles/"+f.article.Slug+"/comments/37", nil),
			map[string]string{"slug": f.article.Slug, "id": "37"})

		err := f.handler.Get(httptest.NewRecorder(), req)
		apiErr := requireAPIError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Invalid comment id: 37", apiErr.Message)
	})

	t.Run("unknown id is 404 naming the id", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		missing := "018f8b2e-7f4d-7a39-a2f0-111111111111"
		req := withRouteParams(
			httptest.NewRequest(http.MethodGet,
				"/api/articles/"+f.article.Slug+"/comments/"+missing, nil),
			map[string]string{"slug": f.article.Slug, "id": missing})

		err := f.handler.Get(httptest.NewRecorder(), req)
		apiErr := requireAPIError(t, err, http.StatusNotFound)
		assert.Equal(t, "Not found any comment with id: "+missing, apiErr.Message)
	})
}

func TestCommentUpdate(t *testing.T) {
	t.Parallel()

	t.Run("author edits", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		req := withBody(f.request(http.MethodPut, f.commenter), &CommentRequest{Body: "edited"})

		rec := httptest.NewRecorder()
		require.NoError(t, f.handler.Update(rec, req))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "edited", f.comments.Comments[f.comment.ID].Body)
	})

	t.Run("article author cannot edit someone else's comment", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		req := withBody(f.request(http.MethodPut, f.articleAuthor), &CommentRequest{Body: "edited"})

		apiErr := requireAPIError(t, f.handler.Update(httptest.NewRecorder(), req), http.StatusForbidden)
		assert.Equal(t, "You are not the author", apiErr.Message)
	})
}

func TestCommentDelete(t *testing.T) {
	t.Parallel()

	t.Run("comment author deletes", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		rec := httptest.NewRecorder()
		require.NoError(t, f.handler.Delete(rec, f.request(http.MethodDelete, f.commenter)))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, f.comments.Comments)
	})

	t.Run("article author deletes a comment they did not write", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		rec := httptest.NewRecorder()
		require.NoError(t, f.handler.Delete(rec, f.request(http.MethodDelete, f.articleAuthor)))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, f.comments.Comments)
	})

	t.Run("anyone else is 403 with the widened message", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		err := f.handler.Delete(httptest.NewRecorder(), f.request(http.MethodDelete, f.stranger))

		apiErr := requireAPIError(t, err, http.StatusForbidden)
		assert.Equal(t, "You are not the author of the article or comment", apiErr.Message)
		assert.Len(t, f.comments.Comments, 1, "the comment survives")
	})

	t.Run("deleting twice reports the comment gone", func(t *testing.T) {
		t.Parallel()

		f := newCommentFixture(t)
		require.NoError(t, f.handler.Delete(httptest.NewRecorder(),
			f.request(http.MethodDelete, f.commenter)))

		err := f.handler.Delete(httptest.NewRecorder(), f.request(http.MethodDelete, f.commenter))
		apiErr := requireAPIError(t, err, http.StatusNotFound)
		assert.Equal(t, "Not found any comment with id: "+f.comment.ID.String(), apiErr.Message)
	})
}
