package api

import (
	"log/slog"
	"net/http"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/store"
)

// LibraryHandler handles searches against the relational card library.
type LibraryHandler struct {
	libraryStore store.LibraryStore
	logger       *slog.Logger
}

// NewLibraryHandler creates a new LibraryHandler with the given dependencies.
func NewLibraryHandler(libraryStore store.LibraryStore, logger *slog.Logger) *LibraryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LibraryHandler{
		libraryStore: libraryStore,
		logger:       logger.With(slog.String("handler", "library")),
	}
}

// SearchCards handles GET /sql/cards.
func (h *LibraryHandler) SearchCards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.LibraryFilter{
		Name:      q.Get("name"),
		Type:      q.Get("type"),
		Level:     q.Get("level"),
		Attribute: q.Get("attribute"),
		Archetype: q.Get("archetype"),
	}

	cards, err := h.libraryStore.Search(r.Context(), filter)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}
