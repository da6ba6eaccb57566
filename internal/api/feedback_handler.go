package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/store"
)

// FeedbackHandler handles the feedback submission endpoint.
type FeedbackHandler struct {
	feedbackStore store.FeedbackStore
	logger        *slog.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler with the given dependencies.
func NewFeedbackHandler(feedbackStore store.FeedbackStore, logger *slog.Logger) *FeedbackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedbackHandler{
		feedbackStore: feedbackStore,
		logger:        logger.With(slog.String("handler", "feedback")),
	}
}

// CreateFeedback handles POST /api/feedback.
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
		return
	}

	feedback, err := h.feedbackStore.Create(r.Context(), fields)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithText(w, r, http.StatusCreated,
		fmt.Sprintf("Successfully submitted feedback by %s!", feedback.Name))
}
