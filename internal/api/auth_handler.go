package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/inkwell/inkwell-api/internal/api/shared"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/service/auth"
	"github.com/inkwell/inkwell-api/internal/store"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users     store.UserStore
	tokens    auth.TokenService
	passwords auth.PasswordHasher
	logger    *slog.Logger
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	users store.UserStore,
	tokens auth.TokenService,
	passwords auth.PasswordHasher,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

// Register handles POST /api/auth/register. A duplicate email surfaces as
// a store error and becomes a 409 in the translator.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[RegisterRequest](r)
	if !ok {
		return fmt.Errorf("register: validated body missing from context")
	}

	user, err := domain.NewUser(body.FullName, body.Email, body.Password)
	if err != nil {
		return err
	}

	hashed, err := h.passwords.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.users.Create(r.Context(), user); err != nil {
		return err
	}

	token, err := h.tokens.Sign(r.Context(), user)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	h.logger.InfoContext(r.Context(), "user registered", "user_id", user.ID)

	w.Header().Set("Authorization", "Bearer "+token)
	shared.RespondWithJSON(w, http.StatusCreated, user)
	return nil
}

// Login handles POST /api/auth/login. Both an unknown email and a wrong
// password are 401: the caller presented no valid credential.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) error {
	body, ok := shared.BodyFrom[LoginRequest](r)
	if !ok {
		return fmt.Errorf("login: validated body missing from context")
	}

	user, err := h.users.GetByEmail(r.Context(), body.Email)
	if err != nil {
		if store.IsNotFound(err) {
			return shared.Unauthorizedf("There isn't any user with email: %s", body.Email)
		}
		return err
	}

	if err := h.passwords.Compare(user.HashedPassword, body.Password); err != nil {
		return shared.Unauthorizedf("Wrong password for user with email: %s", body.Email)
	}

	token, err := h.tokens.Sign(r.Context(), user)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	w.Header().Set("Authorization", "Bearer "+token)
	shared.RespondWithJSON(w, http.StatusOK, user)
	return nil
}
