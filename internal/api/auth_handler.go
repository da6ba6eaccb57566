package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/service/auth"
	"github.com/duelport/cardvault/internal/store"
)

// AuthHandler handles the login and registration endpoints.
type AuthHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userStore store.UserStore, jwtService auth.JWTService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		userStore:  userStore,
		jwtService: jwtService,
		logger:     logger.With(slog.String("handler", "auth")),
	}
}

// credentials pulls the username and password out of the request body,
// reporting the first missing field. The password never goes through the
// generic field logging paths.
func credentials(r *http.Request) (username, password string, err error) {
	fields, err := bodyFields(r)
	if err != nil {
		return "", "", err
	}

	values := make(map[string]string, len(loginParams))
	for _, param := range loginParams {
		value := fieldString(fields, param)
		if value == "" {
			return "", "", missingParamError(param)
		}
		values[param] = value
	}
	return values["username"], values["password"], nil
}

// Login handles POST /sql/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
		return
	}

	user, err := h.userStore.Authenticate(r.Context(), username, password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.UserID)
	if err != nil {
		h.logger.Error("failed to generate token", "error", err, "user_id", user.UserID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    token,
	})
}

// Register handles POST /sql/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username, password, err := credentials(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SafeErrorMessage(err))
		return
	}

	if err := h.userStore.Register(r.Context(), username, password); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
		return
	}

	shared.RespondWithText(w, r, http.StatusCreated, "Successfully registered!")
}

// missingParamError builds the "Please provide a valid X." error used by
// the credential and deck endpoints.
func missingParamError(param string) error {
	return domain.NewValidationError(param, fmt.Sprintf("Please provide a valid %s.", param))
}
