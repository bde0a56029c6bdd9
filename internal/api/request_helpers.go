package api

import (
	"net/http"
	"strconv"

	"github.com/flakeychalk/forcard/internal/api/shared"
	"github.com/flakeychalk/forcard/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getPathUUID extracts a UUID from the URL path parameters.
//
// Returns:
//   - (uuid.UUID, nil): The parsed UUID if valid
//   - (uuid.Nil, error): A validation error if the parameter is missing or invalid
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// Paginator turns offset/limit query parameters into a validated window.
type Paginator struct {
	// DefaultLimit applies when the request names no limit.
	DefaultLimit int
	// MaxLimit caps larger requested limits.
	MaxLimit int
}

// Parse reads offset and limit from the query string. Missing values take
// the defaults; a limit above MaxLimit is capped rather than rejected.
func (p Paginator) Parse(r *http.Request) (PageQuery, error) {
	q := PageQuery{Offset: 0, Limit: p.DefaultLimit}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return PageQuery{}, domain.NewValidationError("offset", "must be an integer", domain.ErrValidation)
		}
		q.Offset = v
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return PageQuery{}, domain.NewValidationError("limit", "must be an integer", domain.ErrValidation)
		}
		q.Limit = v
	}

	if err := shared.ValidateRequest(q); err != nil {
		return PageQuery{}, err
	}
	if p.MaxLimit > 0 && q.Limit > p.MaxLimit {
		q.Limit = p.MaxLimit
	}
	return q, nil
}

// decodeAndValidate decodes a JSON body into v and validates it, writing an
// error response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		if MapErrorToStatusCode(err) == http.StatusBadRequest {
			HandleAPIError(w, r, err, "")
		} else {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		}
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
