package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolchek/gamevault/internal/errs"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps sentinel errors to transport statuses. Unknown errors map
// to a bare 500 so no internals leak to the caller.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: errs.ErrUnauthenticated.Error()})
	case errors.Is(err, errs.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: errs.ErrInvalidCredentials.Error()})
	case errors.Is(err, errs.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: errs.ErrForbidden.Error()})
	case errors.Is(err, errs.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: errs.ErrEmailTaken.Error()})
	case errors.Is(err, errs.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: errs.ErrNotFound.Error()})
	case errors.Is(err, errs.ErrRateLimited):
		writeJSON(w, http.StatusTooManyRequests, errorBody{Error: errs.ErrRateLimited.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal"})
	}
}
