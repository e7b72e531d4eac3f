package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/upkeephq/upkeep/internal/domain/workorder"
)

// WorkOrderHandler handles work order requests
type WorkOrderHandler struct {
	workOrders *workorder.Service
	logger     *slog.Logger
}

type workOrderCreateRequest struct {
	AssetID     *string            `json:"asset_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Origin      workorder.Origin   `json:"origin"`
	Priority    workorder.Priority `json:"priority"`
}

type workOrderUpdateRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Priority    *workorder.Priority `json:"priority"`
	Status      *workorder.Status   `json:"status"`
}

// Create handles POST /api/workorders
func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req workOrderCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	wo, err := h.workOrders.Create(r.Context(), workorder.CreateRequest{
		AssetID:     req.AssetID,
		Title:       req.Title,
		Description: req.Description,
		Origin:      req.Origin,
		Priority:    req.Priority,
		ReportedBy:  actorFromContext(r.Context()),
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, wo)
}

// Get handles GET /api/workorders/{id}
func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	wo, err := h.workOrders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

// List handles GET /api/workorders
func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var opts workorder.ListOptions
	query := r.URL.Query()
	opts.AssetID = query.Get("asset_id")
	if s := query.Get("status"); s != "" {
		status := workorder.Status(s)
		opts.Status = &status
	}
	if p := query.Get("priority"); p != "" {
		priority := workorder.Priority(p)
		opts.Priority = &priority
	}

	orders, err := h.workOrders.List(r.Context(), opts)
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	if orders == nil {
		orders = []workorder.WorkOrder{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// Update handles PUT /api/workorders/{id}
func (h *WorkOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req workOrderUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	wo, err := h.workOrders.Update(r.Context(), chi.URLParam(r, "id"), workorder.UpdateRequest{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, wo)
}

// Delete handles DELETE /api/workorders/{id}
func (h *WorkOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.workOrders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
