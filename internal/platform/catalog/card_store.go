package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// FileCardStore implements store.CardStore over a cards.json file.
type FileCardStore struct {
	coll   *collection[domain.Card]
	logger *slog.Logger

	// lastID is the high-water mark for assigned identifiers, seeded from
	// the collection on first mutation. Guarded by coll.mu: it is only
	// touched inside coll.update closures. Identifiers are never reused
	// after a delete within a process lifetime.
	lastID int64
}

// NewFileCardStore creates a card store over dataDir/cards.json.
// If logger is nil, the default logger is used.
func NewFileCardStore(dataDir string, logger *slog.Logger) *FileCardStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileCardStore{
		coll:   newCollection[domain.Card](filepath.Join(dataDir, "cards.json")),
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure FileCardStore implements store.CardStore interface
var _ store.CardStore = (*FileCardStore)(nil)

// List implements store.CardStore.List.
func (s *FileCardStore) List(ctx context.Context, filter store.CardFilter) ([]domain.Card, error) {
	cards, err := s.coll.read(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if matchesFilter(&card, filter) {
			filtered = append(filtered, card)
		}
	}
	return filtered, nil
}

// ListPromos implements store.CardStore.ListPromos.
func (s *FileCardStore) ListPromos(ctx context.Context) ([]domain.Card, error) {
	cards, err := s.coll.read(ctx)
	if err != nil {
		return nil, err
	}

	promos := make([]domain.Card, 0, len(cards))
	for _, card := range cards {
		if card.IsPromo() {
			promos = append(promos, card)
		}
	}
	return promos, nil
}

// GetByID implements store.CardStore.GetByID.
func (s *FileCardStore) GetByID(ctx context.Context, id int64) (*domain.Card, error) {
	cards, err := s.coll.read(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cards {
		if cards[i].ID == id {
			return &cards[i], nil
		}
	}
	return nil, store.ErrCardNotFound
}

// Create implements store.CardStore.Create.
func (s *FileCardStore) Create(ctx context.Context, fields map[string]any) (*domain.Card, error) {
	var created domain.Card

	err := s.coll.update(ctx, func(cards []domain.Card) ([]domain.Card, error) {
		card := domain.Card{ID: s.nextID(cards)}

		// Fields are checked in declared order; the first missing required
		// field is the one reported. A missing or invalid sale_price is
		// stored as null rather than rejected.
		for _, param := range domain.CardParams {
			value, present := fields[param]
			if !present {
				if param != "sale_price" {
					return nil, domain.NewValidationError(param,
						fmt.Sprintf("Missing required parameter: %s.", param))
				}
				continue
			}
			if err := setCardField(&card, param, value); err != nil {
				return nil, err
			}
		}

		created = card
		return append(cards, card), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card created", "id", created.ID, "name", created.Name)
	return &created, nil
}

// Update implements store.CardStore.Update.
func (s *FileCardStore) Update(ctx context.Context, id int64, fields map[string]any) (*domain.Card, error) {
	var updated domain.Card

	err := s.coll.update(ctx, func(cards []domain.Card) ([]domain.Card, error) {
		idx := -1
		for i := range cards {
			if cards[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, store.ErrCardNotFound
		}

		// Only present, non-falsy fields overwrite the stored values: a
		// submitted empty string or zero is indistinguishable from "not
		// provided" and is silently ignored.
		for _, param := range domain.CardParams {
			value, present := fields[param]
			if !present || isFalsy(value) {
				continue
			}
			if err := setCardField(&cards[idx], param, value); err != nil {
				return nil, err
			}
		}

		updated = cards[idx]
		return cards, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card updated", "id", updated.ID, "name", updated.Name)
	return &updated, nil
}

// Delete implements store.CardStore.Delete.
func (s *FileCardStore) Delete(ctx context.Context, id int64) (*domain.Card, error) {
	var removed domain.Card

	err := s.coll.update(ctx, func(cards []domain.Card) ([]domain.Card, error) {
		idx := -1
		for i := range cards {
			if cards[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, store.ErrCardNotFound
		}

		removed = cards[idx]
		return append(cards[:idx], cards[idx+1:]...), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("card deleted", "id", removed.ID, "name", removed.Name)
	return &removed, nil
}

// nextID assigns a monotonically increasing identifier. Seeding from the
// highest stored id rather than the collection length keeps a create after
// a mid-collection delete from colliding with a surviving card.
func (s *FileCardStore) nextID(cards []domain.Card) int64 {
	var maxID int64
	for i := range cards {
		if cards[i].ID > maxID {
			maxID = cards[i].ID
		}
	}
	if s.lastID > maxID {
		maxID = s.lastID
	}
	s.lastID = maxID + 1
	return s.lastID
}

// setCardField coerces and assigns one request field onto the card.
func setCardField(card *domain.Card, param string, value any) error {
	switch param {
	case "name":
		card.Name = asString(value)
	case "type":
		card.Type = asString(value)
	case "level":
		level, ok := asInt(value)
		if !ok {
			return domain.NewValidationError(param, "Invalid value for parameter: level.")
		}
		card.Level = level
	case "attribute":
		card.Attribute = asOptionalString(value)
	case "archetype":
		card.Archetype = asOptionalString(value)
	case "price":
		price, ok := asFloat(value)
		if !ok {
			return domain.NewValidationError(param, "Invalid value for parameter: price.")
		}
		card.Price = price
	case "sale_price":
		if price, ok := asFloat(value); ok {
			card.SalePrice = &price
		} else {
			card.SalePrice = nil
		}
	case "image_url":
		card.ImageURL = asString(value)
	case "gen":
		card.Gen = asString(value)
	}
	return nil
}

// isFalsy reports whether a request value coerces to an empty string or
// zero, the values the update path treats as "not provided".
func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == "0"
	case float64:
		return v == 0
	case int:
		return v == 0
	case bool:
		return !v
	default:
		return false
	}
}

// matchesFilter evaluates each present filter against the card; filters
// compose with logical AND.
func matchesFilter(card *domain.Card, filter store.CardFilter) bool {
	if filter.Name != "" &&
		!strings.Contains(strings.ToLower(card.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Type != "" && card.Type != filter.Type {
		return false
	}
	if filter.Level != "" {
		level, err := strconv.Atoi(strings.TrimSpace(filter.Level))
		if err != nil || card.Level != level {
			return false
		}
	}
	if filter.Attribute != "" {
		if card.Attribute == nil || !strings.EqualFold(*card.Attribute, filter.Attribute) {
			return false
		}
	}
	if filter.Archetype != "" {
		if card.Archetype == nil ||
			!strings.Contains(strings.ToLower(*card.Archetype), strings.ToLower(filter.Archetype)) {
			return false
		}
	}
	return true
}
