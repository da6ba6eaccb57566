package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// seedCards writes a cards.json fixture and returns a store over it.
func seedCards(t *testing.T, cards []domain.Card) (*FileCardStore, string) {
	t.Helper()
	dir := t.TempDir()

	data, err := json.MarshalIndent(cards, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.json"), data, 0o644))

	return NewFileCardStore(dir, nil), dir
}

func sampleCards() []domain.Card {
	return []domain.Card{
		{
			ID: 1, Name: "Dark Magician", Type: "Normal Monster", Level: 7,
			Attribute: strPtr("DARK"), Archetype: strPtr("Dark Magician"),
			Price: 19.99, SalePrice: floatPtr(14.99), ImageURL: "/img/1.png", Gen: "classic",
		},
		{
			ID: 2, Name: "Blue-Eyes White Dragon", Type: "Normal Monster", Level: 8,
			Attribute: strPtr("LIGHT"), Archetype: strPtr("Blue-Eyes"),
			Price: 24.99, ImageURL: "/img/2.png", Gen: "classic",
		},
		{
			ID: 3, Name: "Pot of Greed", Type: "Spell Card", Level: 0,
			Price: 9.99, ImageURL: "/img/3.png", Gen: "classic",
		},
	}
}

func TestCardStoreList(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		filter      store.CardFilter
		expectedIDs []int64
	}{
		{
			name:        "no filters returns everything in order",
			filter:      store.CardFilter{},
			expectedIDs: []int64{1, 2, 3},
		},
		{
			name:        "name substring is case-insensitive",
			filter:      store.CardFilter{Name: "dragon"},
			expectedIDs: []int64{2},
		},
		{
			name:        "type matches exactly",
			filter:      store.CardFilter{Type: "Spell Card"},
			expectedIDs: []int64{3},
		},
		{
			name:        "type is case-sensitive",
			filter:      store.CardFilter{Type: "spell card"},
			expectedIDs: []int64{},
		},
		{
			name:        "level compares numerically",
			filter:      store.CardFilter{Level: "8"},
			expectedIDs: []int64{2},
		},
		{
			name:        "non-numeric level matches nothing",
			filter:      store.CardFilter{Level: "abc"},
			expectedIDs: []int64{},
		},
		{
			name:        "attribute is case-insensitive and skips null",
			filter:      store.CardFilter{Attribute: "dark"},
			expectedIDs: []int64{1},
		},
		{
			name:        "archetype substring skips null",
			filter:      store.CardFilter{Archetype: "eyes"},
			expectedIDs: []int64{2},
		},
		{
			name:        "filters compose with AND",
			filter:      store.CardFilter{Type: "Normal Monster", Level: "7"},
			expectedIDs: []int64{1},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := seedCards(t, sampleCards())

			cards, err := s.List(ctx, tc.filter)
			require.NoError(t, err)

			ids := make([]int64, 0, len(cards))
			for _, card := range cards {
				ids = append(ids, card.ID)
			}
			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestCardStoreListConjunctionEqualsIntersection(t *testing.T) {
	ctx := context.Background()
	s, _ := seedCards(t, sampleCards())

	byType, err := s.List(ctx, store.CardFilter{Type: "Normal Monster"})
	require.NoError(t, err)
	byLevel, err := s.List(ctx, store.CardFilter{Level: "8"})
	require.NoError(t, err)
	both, err := s.List(ctx, store.CardFilter{Type: "Normal Monster", Level: "8"})
	require.NoError(t, err)

	inLevel := make(map[int64]bool)
	for _, card := range byLevel {
		inLevel[card.ID] = true
	}
	var intersection []int64
	for _, card := range byType {
		if inLevel[card.ID] {
			intersection = append(intersection, card.ID)
		}
	}

	var bothIDs []int64
	for _, card := range both {
		bothIDs = append(bothIDs, card.ID)
	}
	assert.Equal(t, intersection, bothIDs)
}

func TestCardStoreGetByID(t *testing.T) {
	ctx := context.Background()
	s, _ := seedCards(t, sampleCards())

	card, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Blue-Eyes White Dragon", card.Name)

	_, err = s.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardStoreCreate(t *testing.T) {
	ctx := context.Background()

	fullFields := func() map[string]any {
		return map[string]any{
			"name":      "Mirror Force",
			"type":      "Trap Card",
			"level":     "0",
			"attribute": "null",
			"archetype": "null",
			"price":     "4.99",
			"image_url": "/img/4.png",
			"gen":       "classic",
		}
	}

	t.Run("assigns next id and persists", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		card, err := s.Create(ctx, fullFields())
		require.NoError(t, err)
		assert.Equal(t, int64(4), card.ID)
		assert.Equal(t, "Mirror Force", card.Name)
		assert.Nil(t, card.SalePrice, "omitted sale_price defaults to null")

		stored, err := s.GetByID(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, card, stored)
	})

	t.Run("reports the first missing required field", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		fields := fullFields()
		delete(fields, "attribute")
		delete(fields, "price")

		_, err := s.Create(ctx, fields)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.EqualError(t, err, "Missing required parameter: attribute.")
	})

	t.Run("invalid sale_price stored as null", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		fields := fullFields()
		fields["sale_price"] = "not-a-number"

		card, err := s.Create(ctx, fields)
		require.NoError(t, err)
		assert.Nil(t, card.SalePrice)
	})

	t.Run("id is not reused after deleting the highest card", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		_, err := s.Delete(ctx, 3)
		require.NoError(t, err)

		card, err := s.Create(ctx, fullFields())
		require.NoError(t, err)
		assert.Equal(t, int64(4), card.ID)
	})

	t.Run("create after mid-collection delete never collides", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		_, err := s.Delete(ctx, 2)
		require.NoError(t, err)

		card, err := s.Create(ctx, fullFields())
		require.NoError(t, err)

		cards, err := s.List(ctx, store.CardFilter{})
		require.NoError(t, err)
		seen := make(map[int64]int)
		for _, c := range cards {
			seen[c.ID]++
		}
		assert.Equal(t, 1, seen[card.ID])
	})
}

func TestCardStoreUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites present fields", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		card, err := s.Update(ctx, 1, map[string]any{"price": "17.50", "name": "Dark Magician (Reprint)"})
		require.NoError(t, err)
		assert.Equal(t, 17.50, card.Price)
		assert.Equal(t, "Dark Magician (Reprint)", card.Name)
		// Untouched fields survive.
		assert.Equal(t, 7, card.Level)
	})

	t.Run("unknown id yields not found and no mutation", func(t *testing.T) {
		s, dir := seedCards(t, sampleCards())
		before, err := os.ReadFile(filepath.Join(dir, "cards.json"))
		require.NoError(t, err)

		_, err = s.Update(ctx, 9999, map[string]any{"price": "1.00"})
		assert.ErrorIs(t, err, store.ErrCardNotFound)

		after, err := os.ReadFile(filepath.Join(dir, "cards.json"))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("falsy fields are treated as not provided", func(t *testing.T) {
		s, _ := seedCards(t, sampleCards())

		card, err := s.Update(ctx, 1, map[string]any{
			"level": float64(0),
			"name":  "",
			"price": "15.00",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, card.Level, "zero level must not overwrite")
		assert.Equal(t, "Dark Magician", card.Name, "empty name must not overwrite")
		assert.Equal(t, 15.00, card.Price)
	})
}

func TestCardStoreDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := seedCards(t, sampleCards())

	card, err := s.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Blue-Eyes White Dragon", card.Name)

	remaining, err := s.List(ctx, store.CardFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 2)

	// A second delete of the same id reports not found.
	_, err = s.Delete(ctx, 2)
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestCardStoreListPromos(t *testing.T) {
	ctx := context.Background()
	s, _ := seedCards(t, sampleCards())

	promos, err := s.ListPromos(ctx)
	require.NoError(t, err)
	require.Len(t, promos, 1)
	assert.Equal(t, int64(1), promos[0].ID)
}

func TestCardStoreRoundTrip(t *testing.T) {
	// Serialize-then-deserialize of the stored collection is the identity
	// transformation: an update that changes nothing leaves equal records.
	ctx := context.Background()
	s, _ := seedCards(t, sampleCards())

	before, err := s.List(ctx, store.CardFilter{})
	require.NoError(t, err)

	_, err = s.Update(ctx, 1, map[string]any{})
	require.NoError(t, err)

	after, err := s.List(ctx, store.CardFilter{})
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCardStoreStorageFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file", func(t *testing.T) {
		s := NewFileCardStore(t.TempDir(), nil)
		_, err := s.List(ctx, store.CardFilter{})
		assert.ErrorIs(t, err, store.ErrStorage)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "cards.json"), []byte("{not json"), 0o644))

		s := NewFileCardStore(dir, nil)
		_, err := s.List(ctx, store.CardFilter{})
		assert.ErrorIs(t, err, store.ErrStorage)
	})
}
