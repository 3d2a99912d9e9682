package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/inkwell/inkwell-api/internal/domain"
	"github.com/inkwell/inkwell-api/internal/store"
)

// PostgresUserStore implements store.UserStore on PostgreSQL.
type PostgresUserStore struct {
	manager *Manager
	logger  *slog.Logger
}

// NewPostgresUserStore creates a user store reading its handle from manager.
func NewPostgresUserStore(manager *Manager, logger *slog.Logger) *PostgresUserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		manager: manager,
		logger:  logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

const userColumns = `id, full_name, display_name, email, hashed_password, bio, avatar, created_at, updated_at`

// Create implements store.UserStore.Create.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	db, err := s.manager.DB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.FullName, user.DisplayName, user.Email,
		user.HashedPassword, user.Bio, user.Avatar,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return mapError(err, store.ErrUserNotFound)
	}

	s.logger.DebugContext(ctx, "user created", "user_id", user.ID)
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	db, err := s.manager.DB()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db, err := s.manager.DB()
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.DisplayName, &u.Email,
		&u.HashedPassword, &u.Bio, &u.Avatar,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err, store.ErrUserNotFound)
	}
	return &u, nil
}
