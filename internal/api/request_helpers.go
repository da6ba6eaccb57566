package api

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/duelport/cardvault/internal/api/shared"
	"github.com/duelport/cardvault/internal/domain"
	"github.com/duelport/cardvault/internal/store"
)

// maxBodyBytes caps request bodies; catalog records are small.
const maxBodyBytes = 1 << 20

// bodyFields extracts the request body as a flat field map. Clients submit
// JSON objects, url-encoded forms and multipart forms interchangeably, so
// all three are accepted.
func bodyFields(r *http.Request) (map[string]any, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if contentType == "application/json" {
		fields := make(map[string]any)
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			return nil, domain.NewValidationError("body", "Invalid request body.")
		}
		return fields, nil
	}

	if strings.HasPrefix(contentType, "multipart/") {
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
			return nil, domain.NewValidationError("body", "Invalid request body.")
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, domain.NewValidationError("body", "Invalid request body.")
	}

	fields := make(map[string]any, len(r.PostForm))
	for key, values := range r.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}
	return fields, nil
}

// pathID extracts an integer identifier from the URL path. A malformed
// identifier behaves like an unknown one, so handlers report not-found.
func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, store.ErrCardNotFound
	}
	return id, nil
}

// fieldString returns the named body field coerced to a string.
func fieldString(fields map[string]any, name string) string {
	switch v := fields[name].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// fieldInt returns the named body field coerced to an integer, with ok
// reporting whether the value was present and numeric.
func fieldInt(fields map[string]any, name string) (int64, bool) {
	switch v := fields[name].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// userIDFromContext extracts the authenticated user's ID from the request
// context, placed there by the auth middleware.
func userIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
