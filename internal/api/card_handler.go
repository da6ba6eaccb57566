package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/store"
)

// CardHandler handles the flat-file catalog card endpoints.
type CardHandler struct {
	cardStore store.CardStore
	logger    *slog.Logger
}

// NewCardHandler creates a new CardHandler with the given dependencies.
func NewCardHandler(cardStore store.CardStore, logger *slog.Logger) *CardHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CardHandler{
		cardStore: cardStore,
		logger:    logger.With(slog.String("handler", "cards")),
	}
}

// cardFilterFromQuery picks the optional list filters out of the query
// string; absent keys leave the corresponding filter off.
func cardFilterFromQuery(r *http.Request) store.CardFilter {
	q := r.URL.Query()
	return store.CardFilter{
		Name:      q.Get("name"),
		Type:      q.Get("type"),
		Level:     q.Get("level"),
		Attribute: q.Get("attribute"),
		Archetype: q.Get("archetype"),
	}
}

// ListCards handles GET /api/cards.
func (h *CardHandler) ListCards(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardStore.List(r.Context(), cardFilterFromQuery(r))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// ListPromos handles GET /api/promos.
func (h *CardHandler) ListPromos(w http.ResponseWriter, r *http.Request) {
	cards, err := h.cardStore.ListPromos(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// GetCard handles GET /api/cards/{id}.
func (h *CardHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, SafeErrorMessage(err))
		return
	}

	card, err := h.cardStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// CreateCard handles POST /api/cards.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
		return
	}

	card, err := h.cardStore.Create(r.Context(), fields)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithText(w, r, http.StatusCreated,
		fmt.Sprintf("Successfully created the card %s!", card.Name))
}

// UpdateCard handles PUT /api/cards/{id}.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, SafeErrorMessage(err))
		return
	}

	fields, err := bodyFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
		return
	}

	card, err := h.cardStore.Update(r.Context(), id, fields)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK,
		fmt.Sprintf("Successfully updated the card %s!", card.Name))
}

// DeleteCard handles DELETE /api/cards/{id}.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, SafeErrorMessage(err))
		return
	}

	card, err := h.cardStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithText(w, r, http.StatusOK,
		fmt.Sprintf("Successfully deleted the card %s!", card.Name))
}
