package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// ArticleHandler handles article CRUD.
//
// Every mutation applies the same two checks in the same order: the
// article must exist (404 keyed by slug), then the principal must own it
// (403). Existence is always checked before ownership.
type ArticleHandler struct {
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewArticleHandler creates an ArticleHandler with the given dependencies.
func NewArticleHandler(articles store.ArticleStore, logger *slog.Logger) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{articles: articles, logger: logger}
}

// fetchOwned loads the article for a mutation, enforcing existence then
// ownership.
func (h *ArticleHandler) fetchOwned(r *http.Request) (*domain.Article, error) {
	slug := chi.URLParam(r, "slug")

	article, err := h.articles.GetBySlug(r.Context(), slug)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, shared.NotFoundf("Not found any article with slug: %s", slug)
		}
		return nil, err
	}

	principal, ok := shared.PrincipalFrom(r)
	if !ok {
		return nil, fmt.Errorf("article mutation: principal missing from context")
	}
	if !article.IsOwnedBy(principal.ID) {
		return nil, shared.Forbidden("You are not the author")
	}

	return article, nil
}

// Create handles POST /api/articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[ArticleCreateRequest](r)
	if !ok {
		return fmt.Errorf("create article: validated body missing from context")
	}
	principal, ok := shared.PrincipalFrom(r)
	if !ok {
		return fmt.Errorf("create article: principal missing from context")
	}

	article, err := domain.NewArticle(body.Title, body.Subtitle, body.Body, body.Tags, principal)
	if err != nil {
		return err
	}

	if err := h.articles.Create(r.Context(), article); err != nil {
		return err
	}

	h.logger.InfoContext(r.Context(), "article created",
		"article_id", article.ID, "slug", article.Slug, "author_id", article.AuthorID)

	shared.RespondWithJSON(w, http.StatusCreated, article)
	return nil
}

// List handles GET /api/articles with trivial skip/limit pagination.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) error {
	page, size, err := parsePagination(r)
	if err != nil {
		return err
	}

	articles, err := h.articles.List(r.Context(), size, size*(page-1))
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, http.StatusOK, articles)
	return nil
}

// Get handles GET /api/articles/{slug}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) error {
	slug := chi.URLParam(r, "slug")

	article, err := h.articles.GetBySlug(r.Context(), slug)
	if err != nil {
		if store.IsNotFound(err) {
			return shared.NotFoundf("Not found any article with slug: %s", slug)
		}
		return err
	}

	shared.RespondWithJSON(w, http.StatusOK, article)
	return nil
}

// Update handles PUT /api/articles/{slug}: an allow-listed field-by-field
// merge of the validated body. A title change regenerates the slug and
// reports the new location.
func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[ArticleUpdateRequest](r)
	if !ok {
		return fmt.Errorf("update article: validated body missing from context")
	}

	article, err := h.fetchOwned(r)
	if err != nil {
		return err
	}

	slugChanged := article.Apply(domain.ArticleUpdate{
		Title:    body.Title,
		Subtitle: body.Subtitle,
		Body:     body.Body,
		Tags:     body.Tags,
	})

	if err := h.articles.Update(r.Context(), article); err != nil {
		return err
	}

	if slugChanged {
		w.Header().Set("Location", "/api/articles/"+article.Slug)
	}
	shared.RespondWithJSON(w, http.StatusOK, article)
	return nil
}

// Patch handles PATCH /api/articles/{slug}: toggles the draft flag only.
func (h *ArticleHandler) Patch(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[ArticlePatchRequest](r)
	if !ok {
		return fmt.Errorf("patch article: validated body missing from context")
	}

	article, err := h.fetchOwned(r)
	if err != nil {
		return err
	}

	article.Draft = *body.Draft
	if err := h.articles.Update(r.Context(), article); err != nil {
		return err
	}

	shared.RespondWithJSON(w, http.StatusOK, DraftResponse{Draft: article.Draft})
	return nil
}

// Delete handles DELETE /api/articles/{slug}. Deleting an already-absent
// article is a 404, not a silent success.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	article, err := h.fetchOwned(r)
	if err != nil {
		return err
	}

	if err := h.articles.Delete(r.Context(), article.ID); err != nil {
		if store.IsNotFound(err) {
			return shared.NotFoundf("Not found any article with slug: %s", article.Slug)
		}
		return err
	}

	shared.RespondWithJSON(w, http.StatusNoContent, nil)
	return nil
}
