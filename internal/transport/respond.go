package transport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeDomainError maps domain errors onto HTTP status codes: not-found
// errors render 404, validation errors 400, reference conflicts 409,
// everything else 500.
func writeDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, schedule.ErrScheduleNotFound),
		errors.Is(err, schedule.ErrAssetNotFound),
		errors.Is(err, asset.ErrAssetNotFound),
		errors.Is(err, workorder.ErrWorkOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, schedule.ErrInvalidInput),
		errors.Is(err, schedule.ErrInvalidFrequency),
		errors.Is(err, schedule.ErrInvalidStatus),
		errors.Is(err, schedule.ErrInvalidDateRange),
		errors.Is(err, asset.ErrInvalidInput),
		errors.Is(err, workorder.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, asset.ErrInUse),
		errors.Is(err, workorder.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		if logger != nil {
			logger.Error("request failed", "error", err)
		}
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
