package api

import (
	"log/slog"
	"net/http"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/store"
)

// FAQHandler handles the read-only FAQ endpoint.
type FAQHandler struct {
	faqStore store.FAQStore
	logger   *slog.Logger
}

// NewFAQHandler creates a new FAQHandler with the given dependencies.
func NewFAQHandler(faqStore store.FAQStore, logger *slog.Logger) *FAQHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FAQHandler{
		faqStore: faqStore,
		logger:   logger.With(slog.String("handler", "faq")),
	}
}

// ListFAQ handles GET /api/faq.
func (h *FAQHandler) ListFAQ(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.faqStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, faqs)
}
