package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// raiseExceptionCode is the PostgreSQL error code emitted by RAISE EXCEPTION
// inside sp_add_card when a deck business rule rejects the addition.
const raiseExceptionCode = "P0001"

// PostgresDeckStore implements the store.DeckStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDeckStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDeckStore creates a new PostgreSQL implementation of the
// DeckStore interface. If logger is nil, a default logger will be used.
func NewPostgresDeckStore(db store.DBTX, logger *slog.Logger) *PostgresDeckStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresDeckStore{
		db:     db,
		logger: logger.With(slog.String("component", "deck_store")),
	}
}

// Ensure PostgresDeckStore implements store.DeckStore interface
var _ store.DeckStore = (*PostgresDeckStore)(nil)

// ListDeck implements store.DeckStore.ListDeck.
func (s *PostgresDeckStore) ListDeck(ctx context.Context, userID int64) ([]domain.LibraryCard, error) {
	query := `
		SELECT ` + libraryColumns + `
		FROM deck
		    JOIN cards USING (card_id)
		WHERE user_id = $1
		ORDER BY deck_position
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		s.logger.Error("deck listing failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	return scanLibraryCards(rows)
}

// ListRecommended implements store.DeckStore.ListRecommended.
func (s *PostgresDeckStore) ListRecommended(ctx context.Context, userID int64) ([]domain.LibraryCard, error) {
	query := `
		SELECT ` + libraryColumns + `
		FROM cards
		    JOIN recommended USING (card_id)
		WHERE user_id = $1
		ORDER BY score DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		s.logger.Error("recommendation listing failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	return scanLibraryCards(rows)
}

// AddCard implements store.DeckStore.AddCard.
// The procedure owns the deck-membership rules; this layer only translates
// its rejection signal into ErrDeckRuleViolation.
func (s *PostgresDeckStore) AddCard(ctx context.Context, userID, cardID int64) error {
	_, err := s.db.ExecContext(ctx, "CALL sp_add_card($1, $2)", userID, cardID)
	if err != nil {
		if isRaiseException(err) {
			s.logger.Debug("deck rule rejected card",
				"user_id", userID, "card_id", cardID)
			return store.ErrDeckRuleViolation
		}
		s.logger.Error("deck insert failed", "error", err,
			"user_id", userID, "card_id", cardID)
		return fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	return nil
}

// isRaiseException reports whether the error is a database-raised business
// rule rejection rather than an infrastructure failure.
func isRaiseException(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == raiseExceptionCode
}
