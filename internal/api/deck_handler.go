package api

import (
	"log/slog"
	"net/http"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/store"
)

// DeckHandler handles the deck and recommendation endpoints. All of them
// sit behind the auth middleware; the addressed user must match the token
// subject, since deck contents are private to their owner.
type DeckHandler struct {
	deckStore store.DeckStore
	logger    *slog.Logger
}

// NewDeckHandler creates a new DeckHandler with the given dependencies.
func NewDeckHandler(deckStore store.DeckStore, logger *slog.Logger) *DeckHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DeckHandler{
		deckStore: deckStore,
		logger:    logger.With(slog.String("handler", "decks")),
	}
}

// authorizeUser checks that the addressed user is the authenticated one.
// Writes the error response and returns false when it is not.
func (h *DeckHandler) authorizeUser(w http.ResponseWriter, r *http.Request, userID int64) bool {
	authUserID, ok := userIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		return false
	}
	if authUserID != userID {
		h.logger.Warn("deck access denied",
			"token_user_id", authUserID, "requested_user_id", userID)
		shared.RespondWithError(w, r, http.StatusForbidden, "You do not own this deck.")
		return false
	}
	return true
}

// ListDeck handles GET /sql/decks/{id}.
func (h *DeckHandler) ListDeck(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, SafeErrorMessage(err))
		return
	}
	if !h.authorizeUser(w, r, userID) {
		return
	}

	cards, err := h.deckStore.ListDeck(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// ListRecommended handles GET /sql/recommended/{id}.
func (h *DeckHandler) ListRecommended(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, SafeErrorMessage(err))
		return
	}
	if !h.authorizeUser(w, r, userID) {
		return
	}

	cards, err := h.deckStore.ListRecommended(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, cards)
}

// AddCard handles POST /sql/decks.
func (h *DeckHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
		return
	}

	// Both fields are required; the first missing one is reported.
	values := make(map[string]int64, len(deckParams))
	for _, param := range deckParams {
		value, ok := fieldInt(fields, param)
		if !ok || value == 0 {
			err := missingParamError(param)
			shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
			return
		}
		values[param] = value
	}

	if !h.authorizeUser(w, r, values["user_id"]) {
		return
	}

	if err := h.deckStore.AddCard(r.Context(), values["user_id"], values["card_id"]); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithText(w, r, http.StatusCreated, "Successfully added card to deck!")
}
