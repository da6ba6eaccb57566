package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelport/cardvault/internal/domain"
)

// seedFeedback writes a feedback.json fixture and returns a store over it.
func seedFeedback(t *testing.T, entries []domain.Feedback) *FileFeedbackStore {
	t.Helper()
	dir := t.TempDir()

	data, err := json.MarshalIndent(entries, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "feedback.json"), data, 0o644))

	return NewFileFeedbackStore(dir, nil)
}

func TestFeedbackStoreCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns timestamp id and persists all fields", func(t *testing.T) {
		s := seedFeedback(t, []domain.Feedback{})

		before := time.Now().UnixMilli()
		entry, err := s.Create(ctx, map[string]any{
			"name":    "Joey",
			"email":   "joey@example.com",
			"message": "More dragons please.",
		})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, entry.ID, before)
		assert.Equal(t, "Joey", entry.Name)
		assert.Equal(t, "joey@example.com", entry.Email)
		assert.Equal(t, "More dragons please.", entry.Message)
	})

	t.Run("reports the first missing field", func(t *testing.T) {
		tests := []struct {
			name        string
			fields      map[string]any
			expectedMsg string
		}{
			{
				name:        "missing name",
				fields:      map[string]any{"email": "a@b.co", "message": "hi"},
				expectedMsg: "Please provide a valid name.",
			},
			{
				name:        "empty email",
				fields:      map[string]any{"name": "Joey", "email": "", "message": "hi"},
				expectedMsg: "Please provide a valid email.",
			},
			{
				name:        "missing message",
				fields:      map[string]any{"name": "Joey", "email": "a@b.co"},
				expectedMsg: "Please provide a valid message.",
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				s := seedFeedback(t, []domain.Feedback{})
				_, err := s.Create(ctx, tc.fields)
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				assert.EqualError(t, err, tc.expectedMsg)
			})
		}
	})

	t.Run("colliding timestamps get distinct ids", func(t *testing.T) {
		s := seedFeedback(t, []domain.Feedback{})
		fixed := time.Now()
		s.now = func() time.Time { return fixed }

		first, err := s.Create(ctx, map[string]any{
			"name": "Joey", "email": "a@b.co", "message": "one",
		})
		require.NoError(t, err)

		second, err := s.Create(ctx, map[string]any{
			"name": "Mai", "email": "c@d.co", "message": "two",
		})
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestFeedbackStoreConcurrentCreates(t *testing.T) {
	// Writers are serialized per collection: concurrent submissions must
	// never lose each other.
	ctx := context.Background()
	s := seedFeedback(t, []domain.Feedback{})

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Create(ctx, map[string]any{
				"name":    fmt.Sprintf("user-%d", i),
				"email":   fmt.Sprintf("user-%d@example.com", i),
				"message": "concurrent",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := s.coll.read(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, writers)

	ids := make(map[int64]bool)
	for _, entry := range stored {
		ids[entry.ID] = true
	}
	assert.Len(t, ids, writers, "every submission keeps a distinct id")
}
