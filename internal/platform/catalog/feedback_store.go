package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// FileFeedbackStore implements store.FeedbackStore over a feedback.json file.
type FileFeedbackStore struct {
	coll   *collection[domain.Feedback]
	logger *slog.Logger

	// now is injectable for tests.
	now func() time.Time
}

// NewFileFeedbackStore creates a feedback store over dataDir/feedback.json.
// If logger is nil, the default logger is used.
func NewFileFeedbackStore(dataDir string, logger *slog.Logger) *FileFeedbackStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileFeedbackStore{
		coll:   newCollection[domain.Feedback](filepath.Join(dataDir, "feedback.json")),
		logger: logger.With(slog.String("component", "feedback_store")),
		now:    time.Now,
	}
}

// Ensure FileFeedbackStore implements store.FeedbackStore interface
var _ store.FeedbackStore = (*FileFeedbackStore)(nil)

// Create implements store.FeedbackStore.Create.
func (s *FileFeedbackStore) Create(ctx context.Context, fields map[string]any) (*domain.Feedback, error) {
	var created domain.Feedback

	err := s.coll.update(ctx, func(entries []domain.Feedback) ([]domain.Feedback, error) {
		entry := domain.Feedback{ID: s.assignID(entries)}

		// All three fields are required and non-empty; the first missing
		// one is reported.
		for _, param := range domain.FeedbackParams {
			value := asString(fields[param])
			if value == "" {
				return nil, domain.NewValidationError(param,
					fmt.Sprintf("Please provide a valid %s.", param))
			}
			switch param {
			case "name":
				entry.Name = value
			case "email":
				entry.Email = value
			case "message":
				entry.Message = value
			}
		}

		created = entry
		return append(entries, entry), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("feedback submitted", "id", created.ID, "name", created.Name)
	return &created, nil
}

// assignID uses the millisecond timestamp at creation time, bumped past the
// highest existing identifier when two submissions land on the same tick.
func (s *FileFeedbackStore) assignID(entries []domain.Feedback) int64 {
	id := s.now().UnixMilli()
	for i := range entries {
		if entries[i].ID >= id {
			id = entries[i].ID + 1
		}
	}
	return id
}
