package catalog

import (
	"context"
	"path/filepath"

	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// FileFAQStore implements store.FAQStore over a faq.json file.
// The collection is read-only; no write path is exposed.
type FileFAQStore struct {
	coll *collection[domain.FAQ]
}

// NewFileFAQStore creates a FAQ store over dataDir/faq.json.
func NewFileFAQStore(dataDir string) *FileFAQStore {
	return &FileFAQStore{
		coll: newCollection[domain.FAQ](filepath.Join(dataDir, "faq.json")),
	}
}

// Ensure FileFAQStore implements store.FAQStore interface
var _ store.FAQStore = (*FileFAQStore)(nil)

// List returns every FAQ entry in storage order.
func (s *FileFAQStore) List(ctx context.Context) ([]domain.FAQ, error) {
	return s.coll.read(ctx)
}
