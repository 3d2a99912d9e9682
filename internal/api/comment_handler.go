package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// CommentHandler handles comment CRUD.
//
// Editing a comment is permitted to its author only. Deleting is widened:
// either the comment's author or the owning article's author may delete.
// The asymmetry is deliberate and load-bearing.
type CommentHandler struct {
	comments store.CommentStore
	articles store.ArticleStore
	logger   *slog.Logger
}

// NewCommentHandler creates a CommentHandler with the given dependencies.
func NewCommentHandler(
	comments store.CommentStore,
	articles store.ArticleStore,
	logger *slog.Logger,
) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{comments: comments, articles: articles, logger: logger}
}

// fetchComment loads the comment addressed by the {id} path parameter.
func (h *CommentHandler) fetchComment(r *http.Request) (*domain.Comment, error) {
	id, err := pathUUID(r, "id", "comment id")
	if err != nil {
		return nil, err
	}

	comment, err := h.comments.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, shared.NotFoundf("Not found any comment with id: %s", id)
		}
		return nil, err
	}

	return comment, nil
}

// Create handles POST /api/articles/{slug}/comments. The owning article
// must exist; anyone authenticated may comment.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[CommentRequest](r)
	if !ok {
		return fmt.Errorf("create comment: validated body missing from context")
	}
	principal, ok := shared.PrincipalFrom(r)
	if !ok {
		return fmt.Errorf("create comment: principal missing from context")
	}

	slug := chi.URLParam(r, "slug")
	article, err := h.articles.GetBySlug(r.Context(), slug)
	if err != nil {
		if store.IsNotFound(err) {
			return shared.NotFoundf("Not found any article with slug: %s", slug)
		}
		return err
	}

	comment, err := domain.NewComment(body.Body, article, principal)
	if err != nil {
		return err
	}

	if err := h.comments.Create(r.Context(), comment); err != nil {
		return err
	}

	h.logger.InfoContext(r.Context(), "comment created",
		"comment_id", comment.ID, "article_id", article.ID, "author_id", comment.AuthorID)

	shared.RespondWithJSON(w, http.StatusCreated, comment)
	return nil
}

// Get handles GET /api/articles/{slug}/comments/{id}.
func (h *CommentHandler) Get(w http.ResponseWriter, r *http.Request) error {
	comment, err := h.fetchComment(r)
	if err != nil {
		return err
	}

	shared.RespondWithJSON(w, http.StatusOK, comment)
	return nil
}

// Update handles PUT /api/articles/{slug}/comments/{id}. Only the
// comment's author may edit it.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[CommentRequest](r)
	if !ok {
		return fmt.Errorf("update comment: validated body missing from context")
	}
	principal, ok := shared.PrincipalFrom(r)
	if !ok {
		return fmt.Errorf("update comment: principal missing from context")
	}

	comment, err := h.fetchComment(r)
	if err != nil {
		return err
	}

	if !comment.IsOwnedBy(principal.ID) {
		return shared.Forbidden("You are not the author")
	}

	comment.Body = body.Body
	comment.UpdatedAt = time.Now().UTC()

	if err := h.comments.Update(r.Context(), comment); err != nil {
		return err
	}

	shared.RespondWithJSON(w, http.StatusOK, comment)
	return nil
}

// Delete handles DELETE /api/articles/{slug}/comments/{id} with the
// widened ownership rule.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	principal, ok := shared.PrincipalFrom(r)
	if !ok {
		return fmt.Errorf("delete comment: principal missing from context")
	}

	comment, err := h.fetchComment(r)
	if err != nil {
		return err
	}

	if !comment.IsOwnedBy(principal.ID) {
		article, err := h.articles.GetByID(r.Context(), comment.ArticleID)
		if err != nil && !store.IsNotFound(err) {
			return err
		}
		if article == nil || !article.IsOwnedBy(principal.ID) {
			return shared.Forbidden("You are not the author of the article or comment")
		}
	}

	if err := h.comments.Delete(r.Context(), comment.ID); err != nil {
		if store.IsNotFound(err) {
			return shared.NotFoundf("Not found any comment with id: %s", comment.ID)
		}
		return err
	}

	shared.RespondWithJSON(w, http.StatusNoContent, nil)
	return nil
}
