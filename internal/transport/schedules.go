package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/upkeephq/upkeep/internal/domain/changelog"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
)

// ScheduleHandler handles schedule, occurrence, completion, and change-log
// requests
type ScheduleHandler struct {
	schedules *schedule.Service
	logger    *slog.Logger
}

type scheduleCreateRequest struct {
	AssetID            string             `json:"asset_id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Frequency          schedule.Frequency `json:"frequency"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date,omitempty"`
	Status             schedule.Status    `json:"status"`
	AffectsAssetStatus bool               `json:"affects_asset_status"`
}

// scheduleUpdateRequest carries a partial update. An explicitly empty
// end_date clears it, making the schedule open-ended.
type scheduleUpdateRequest struct {
	AssetID            *string             `json:"asset_id"`
	Title              *string             `json:"title"`
	Description        *string             `json:"description"`
	Frequency          *schedule.Frequency `json:"frequency"`
	StartDate          *string             `json:"start_date"`
	EndDate            *string             `json:"end_date"`
	Status             *schedule.Status    `json:"status"`
	AffectsAssetStatus *bool               `json:"affects_asset_status"`
}

type completionCreateRequest struct {
	CompletedDate string `json:"completed_date"`
	Notes         string `json:"notes"`
}

const dayFormat = "2006-01-02"

func parseDay(field, value string) (time.Time, error) {
	t, err := time.Parse(dayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: expected YYYY-MM-DD", field)
	}
	return t, nil
}

// Create handles POST /api/schedules
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req scheduleCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	createReq := schedule.CreateRequest{
		AssetID:            req.AssetID,
		Title:              req.Title,
		Description:        req.Description,
		Frequency:          req.Frequency,
		Status:             req.Status,
		AffectsAssetStatus: req.AffectsAssetStatus,
	}
	if req.StartDate != "" {
		startDate, err := parseDay("start_date", req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		createReq.StartDate = startDate
	}
	if req.EndDate != "" {
		endDate, err := parseDay("end_date", req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		createReq.EndDate = &endDate
	}

	sched, err := h.schedules.Create(r.Context(), actorFromContext(r.Context()), createReq)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, sched)
}

// Get handles GET /api/schedules/{id}
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	sched, err := h.schedules.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

// List handles GET /api/schedules
func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.schedules.List(r.Context())
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if summaries == nil {
		summaries = []schedule.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Update handles PUT /api/schedules/{id}
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req scheduleUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	updateReq := schedule.UpdateRequest{
		AssetID:            req.AssetID,
		Title:              req.Title,
		Description:        req.Description,
		Frequency:          req.Frequency,
		Status:             req.Status,
		AffectsAssetStatus: req.AffectsAssetStatus,
	}
	if req.StartDate != nil {
		startDate, err := parseDay("start_date", *req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		updateReq.StartDate = &startDate
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			updateReq.ClearEndDate = true
		} else {
			endDate, err := parseDay("end_date", *req.EndDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			updateReq.EndDate = &endDate
		}
	}

	sched, err := h.schedules.Update(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id"), updateReq)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sched)
}

// Delete handles DELETE /api/schedules/{id}
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.schedules.Delete(r.Context(), actorFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// Occurrences handles GET /api/schedules/{id}/occurrences
func (h *ScheduleHandler) Occurrences(w http.ResponseWriter, r *http.Request) {
	opts, err := projectOptsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	occurrences, err := h.schedules.Occurrences(r.Context(), chi.URLParam(r, "id"), opts)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if occurrences == nil {
		occurrences = []schedule.Occurrence{}
	}
	writeJSON(w, http.StatusOK, occurrences)
}

// DueItems handles GET /api/occurrences, the feed dashboard and calendar
// views consume
func (h *ScheduleHandler) DueItems(w http.ResponseWriter, r *http.Request) {
	opts, err := projectOptsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	overdueOnly := r.URL.Query().Get("overdue") == "true"

	items, err := h.schedules.DueItems(r.Context(), overdueOnly, opts)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if items == nil {
		items = []schedule.DueItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// RecordCompletion handles POST /api/schedules/{id}/completions
func (h *ScheduleHandler) RecordCompletion(w http.ResponseWriter, r *http.Request) {
	var req completionCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.CompletedDate == "" {
		writeError(w, http.StatusBadRequest, "completed_date is required")
		return
	}
	completedDate, err := parseDay("completed_date", req.CompletedDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	comp, err := h.schedules.RecordCompletion(r.Context(), chi.URLParam(r, "id"), schedule.CompletionRequest{
		CompletedDate: completedDate,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, comp)
}

// Completions handles GET /api/schedules/{id}/completions
func (h *ScheduleHandler) Completions(w http.ResponseWriter, r *http.Request) {
	completions, err := h.schedules.Completions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if completions == nil {
		completions = []schedule.Completion{}
	}
	writeJSON(w, http.StatusOK, completions)
}

// ChangeLog handles GET /api/schedules/{id}/changelog
func (h *ScheduleHandler) ChangeLog(w http.ResponseWriter, r *http.Request) {
	var opts changelog.ListOptions
	if t := r.URL.Query().Get("type"); t != "" {
		changeType := changelog.ChangeType(t)
		opts.ChangeType = &changeType
	}

	entries, err := h.schedules.ChangeLog(r.Context(), chi.URLParam(r, "id"), opts)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if entries == nil {
		entries = []changelog.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func projectOptsFromQuery(r *http.Request) (schedule.ProjectOptions, error) {
	var opts schedule.ProjectOptions
	if horizon := r.URL.Query().Get("horizon"); horizon != "" {
		horizonEnd, err := parseDay("horizon", horizon)
		if err != nil {
			return opts, err
		}
		opts.HorizonEnd = horizonEnd
	}
	return opts, nil
}
