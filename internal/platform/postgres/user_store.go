package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
// Credential checking and password hashing are delegated entirely to the
// database-side authenticate function and sp_add_user procedure; this layer
// never sees a hash and never logs password material.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Authenticate implements store.UserStore.Authenticate.
func (s *PostgresUserStore) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx,
		"SELECT authenticate($1, $2)", username, password).Scan(&ok)
	if err != nil {
		s.logger.Error("credential check failed", "error", err, "username", username)
		return nil, fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	if !ok {
		return nil, store.ErrInvalidCredentials
	}

	user := &domain.User{}
	err = s.db.QueryRowContext(ctx,
		"SELECT user_id, username FROM users WHERE username = $1", username).
		Scan(&user.UserID, &user.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// The account passed the credential check but vanished before
			// the follow-up read.
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("user lookup failed", "error", err, "username", username)
		return nil, fmt.Errorf("%w: %v", store.ErrStorage, err)
	}

	return user, nil
}

// Register implements store.UserStore.Register.
func (s *PostgresUserStore) Register(ctx context.Context, username, password string) error {
	_, err := s.db.ExecContext(ctx, "CALL sp_add_user($1, $2)", username, password)
	if err != nil {
		s.logger.Error("registration failed", "error", err, "username", username)
		return fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	s.logger.Info("user registered", "username", username)
	return nil
}
