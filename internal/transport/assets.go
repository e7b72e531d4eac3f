package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/upkeephq/upkeep/internal/domain/asset"
	"github.com/upkeephq/upkeep/internal/domain/schedule"
)

// AssetHandler handles asset requests
type AssetHandler struct {
	assets    *asset.Service
	schedules *schedule.Service
	logger    *slog.Logger
}

type assetCreateRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Status      asset.Status `json:"status"`
}

type assetUpdateRequest struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Location    *string       `json:"location"`
	Status      *asset.Status `json:"status"`
}

// Create handles POST /api/assets
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assetCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	a, err := h.assets.Create(r.Context(), asset.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Get handles GET /api/assets/{id}
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.assets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// List handles GET /api/assets
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.assets.List(r.Context())
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if assets == nil {
		assets = []asset.Asset{}
	}
	writeJSON(w, http.StatusOK, assets)
}

// Schedules handles GET /api/assets/{id}/schedules
func (h *AssetHandler) Schedules(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.assets.Get(r.Context(), id); err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	summaries, err := h.schedules.ListByAsset(r.Context(), id)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if summaries == nil {
		summaries = []schedule.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

// Update handles PUT /api/assets/{id}
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req assetUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	a, err := h.assets.Update(r.Context(), chi.URLParam(r, "id"), asset.UpdateRequest{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Status:      req.Status,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// Delete handles DELETE /api/assets/{id}
func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
