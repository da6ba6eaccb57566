// Package postgres implements the relational query façade over the card
// library, decks, recommendations and accounts. Every value reaching the
// database is a bound parameter.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// libraryColumns is the column list shared by every card-library query.
const libraryColumns = "card_id, name, card_type, level, attribute, archetype, effect"

// PostgresLibraryStore implements the store.LibraryStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLibraryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLibraryStore creates a new PostgreSQL implementation of the
// LibraryStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresLibraryStore(db store.DBTX, logger *slog.Logger) *PostgresLibraryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresLibraryStore{
		db:     db,
		logger: logger.With(slog.String("component", "library_store")),
	}
}

// Ensure PostgresLibraryStore implements store.LibraryStore interface
var _ store.LibraryStore = (*PostgresLibraryStore)(nil)

// Search implements store.LibraryStore.Search.
func (s *PostgresLibraryStore) Search(ctx context.Context, filter store.LibraryFilter) ([]domain.LibraryCard, error) {
	query, args, err := buildSearchQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("card search failed", "error", err)
		return nil, fmt.Errorf("%w: %v", store.ErrStorage, err)
	}
	defer func() { _ = rows.Close() }()

	return scanLibraryCards(rows)
}

// buildSearchQuery assembles the conjunctive WHERE clause for a library
// search. Each present filter is ANDed in; level compares numerically and
// the rest compare case-insensitively. Values are returned as bind
// arguments, never spliced into the query text.
func buildSearchQuery(filter store.LibraryFilter) (string, []any, error) {
	var (
		conds []string
		args  []any
	)

	appendCond := func(column string, value string) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("LOWER(%s) = LOWER($%d)", column, len(args)))
	}

	if filter.Name != "" {
		appendCond("name", filter.Name)
	}
	// The request field "type" maps to the storage column "card_type".
	if filter.Type != "" {
		appendCond("card_type", filter.Type)
	}
	if filter.Level != "" {
		level, err := strconv.Atoi(strings.TrimSpace(filter.Level))
		if err != nil {
			return "", nil, domain.NewValidationError("level", "Invalid value for parameter: level.")
		}
		args = append(args, level)
		conds = append(conds, fmt.Sprintf("level = $%d", len(args)))
	}
	if filter.Attribute != "" {
		appendCond("attribute", filter.Attribute)
	}
	if filter.Archetype != "" {
		appendCond("archetype", filter.Archetype)
	}

	query := "SELECT " + libraryColumns + " FROM cards"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return query, args, nil
}

// scanLibraryCards drains a card-library result set.
func scanLibraryCards(rows *sql.Rows) ([]domain.LibraryCard, error) {
	cards := make([]domain.LibraryCard, 0)
	for rows.Next() {
		var (
			card                         domain.LibraryCard
			attribute, archetype, effect sql.NullString
		)
		if err := rows.Scan(&card.CardID, &card.Name, &card.CardType, &card.Level,
			&attribute, &archetype, &effect); err != nil {
			return nil, fmt.Errorf("%w: scanning card row: %v", store.ErrStorage, err)
		}
		if attribute.Valid {
			card.Attribute = &attribute.String
		}
		if archetype.Valid {
			card.Archetype = &archetype.String
		}
		if effect.Valid {
			card.Effect = &effect.String
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading card rows: %v", store.ErrStorage, err)
	}
	return cards, nil
}
