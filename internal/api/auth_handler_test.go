package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duelport/cardvault/internal/config"
	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/service/auth"
	"github.com/duelport/cardvault/internal/store"
)

// stubUserStore satisfies store.UserStore with canned responses.
type stubUserStore struct {
	user        *domain.User
	authErr     error
	registerErr error

	registeredUsername string
}

func (s *stubUserStore) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if s.authErr != nil {
		return nil, s.authErr
	}
	return s.user, nil
}

func (s *stubUserStore) Register(ctx context.Context, username, password string) error {
	s.registeredUsername = username
	return s.registerErr
}

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()
	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	return svc
}

func newAuthRouter(t *testing.T, users *stubUserStore) http.Handler {
	t.Helper()
	handler := NewAuthHandler(users, newTestJWTService(t), nil)

	r := chi.NewRouter()
	r.Post("/sql/login", handler.Login)
	r.Post("/sql/register", handler.Register)
	return r
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success returns user and token", func(t *testing.T) {
		users := &stubUserStore{user: &domain.User{UserID: 7, Username: "yugi"}}
		router := newAuthRouter(t, users)

		w := postForm(router, "/sql/login", url.Values{
			"username": {"yugi"},
			"password": {"heart-of-the-cards"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(7), resp.UserID)
		assert.Equal(t, "yugi", resp.Username)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		users := &stubUserStore{authErr: store.ErrInvalidCredentials}
		router := newAuthRouter(t, users)

		w := postForm(router, "/sql/login", url.Values{
			"username": {"yugi"},
			"password": {"wrong"},
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid username or password", w.Body.String())
	})

	t.Run("missing fields report the first one", func(t *testing.T) {
		router := newAuthRouter(t, &stubUserStore{})

		tests := []struct {
			name    string
			form    url.Values
			message string
		}{
			{
				name:    "no username",
				form:    url.Values{"password": {"x"}},
				message: "Please provide a valid username.",
			},
			{
				name:    "no password",
				form:    url.Values{"username": {"yugi"}},
				message: "Please provide a valid password.",
			},
			{
				name:    "empty body",
				form:    url.Values{},
				message: "Please provide a valid username.",
			},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				w := postForm(router, "/sql/login", tc.form)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Equal(t, tc.message, w.Body.String())
			})
		}
	})

	t.Run("store failure stays generic", func(t *testing.T) {
		users := &stubUserStore{authErr: store.ErrStorage}
		router := newAuthRouter(t, users)

		w := postForm(router, "/sql/login", url.Values{
			"username": {"yugi"},
			"password": {"heart-of-the-cards"},
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error. Please try again later.", w.Body.String())
	})
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		users := &stubUserStore{}
		router := newAuthRouter(t, users)

		w := postForm(router, "/sql/register", url.Values{
			"username": {"kaiba"},
			"password": {"blue-eyes"},
		})
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Successfully registered!", w.Body.String())
		assert.Equal(t, "kaiba", users.registeredUsername)
	})

	t.Run("missing password", func(t *testing.T) {
		router := newAuthRouter(t, &stubUserStore{})

		w := postForm(router, "/sql/register", url.Values{"username": {"kaiba"}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Please provide a valid password.", w.Body.String())
	})

	t.Run("accepts JSON credentials", func(t *testing.T) {
		users := &stubUserStore{}
		router := newAuthRouter(t, users)

		req := httptest.NewRequest(http.MethodPost, "/sql/register",
			strings.NewReader(`{"username":"mai","password":"harpie"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "mai", users.registeredUsername)
	})
}
