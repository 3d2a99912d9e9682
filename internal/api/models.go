package api

import "strings"

// Request payloads. Each implements middleware.Normalizable so the body
// gate trims and coerces values before validation, mirroring the coercion
// the declared shapes promise.

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (req *RegisterRequest) Normalize() {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (req *LoginRequest) Normalize() {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

// ArticleCreateRequest defines the payload for creating an article.
type ArticleCreateRequest struct {
	Title    string   `json:"title"    validate:"required,min=5"`
	Subtitle string   `json:"subtitle" validate:"required,min=8"`
	Body     string   `json:"body"     validate:"required"`
	Tags     []string `json:"tags"     validate:"required,min=1,max=5,dive,required"`
}

func (req *ArticleCreateRequest) Normalize() {
	req.Title = strings.TrimSpace(req.Title)
	req.Subtitle = strings.TrimSpace(req.Subtitle)
	req.Tags = compactTags(req.Tags)
}

// ArticleUpdateRequest defines the payload for a full article edit. All
// fields are optional; nil fields leave the stored value untouched.
type ArticleUpdateRequest struct {
	Title    *string  `json:"title"    validate:"omitempty,min=5"`
	Subtitle *string  `json:"subtitle" validate:"omitempty,min=8"`
	Body     *string  `json:"body"     validate:"omitempty"`
	Tags     []string `json:"tags"     validate:"omitempty,min=1,max=5,dive,required"`
}

func (req *ArticleUpdateRequest) Normalize() {
	if req.Title != nil {
		*req.Title = strings.TrimSpace(*req.Title)
	}
	if req.Subtitle != nil {
		*req.Subtitle = strings.TrimSpace(*req.Subtitle)
	}
	if req.Tags != nil {
		req.Tags = compactTags(req.Tags)
	}
}

// ArticlePatchRequest defines the payload for toggling an article's draft
// state.
type ArticlePatchRequest struct {
	Draft *bool `json:"draft" validate:"required"`
}

// CommentRequest defines the payload for creating or editing a comment.
type CommentRequest struct {
	Body string `json:"body" validate:"required"`
}

func (req *CommentRequest) Normalize() {
	req.Body = strings.TrimSpace(req.Body)
}

// DraftResponse is the body of a successful article PATCH.
type DraftResponse struct {
	Draft bool `json:"draft"`
}

// compactTags trims every tag and drops the ones left empty.
func compactTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	out := tags[:0]
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}
