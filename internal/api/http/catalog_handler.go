package http

import (
	"net/http"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/service"
)

type CatalogHandler struct {
	catalogSvc service.CatalogService
}

func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

type equipmentRequest struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	UnitPricePerDayCents int64  `json:"unit_price_per_day_cents"`
	StockQuantity        int32  `json:"stock_quantity"`
	Active               *bool  `json:"active"`
}

func (h *CatalogHandler) AddEquipment(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	item := &domain.EquipmentItem{
		Name:                 req.Name,
		Description:          req.Description,
		UnitPricePerDayCents: req.UnitPricePerDayCents,
		StockQuantity:        req.StockQuantity,
		Active:               true,
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := h.catalogSvc.AddEquipment(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *CatalogHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}

	var req equipmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	item, err := h.catalogSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.UnitPricePerDayCents > 0 {
		item.UnitPricePerDayCents = req.UnitPricePerDayCents
	}
	if req.StockQuantity >= 0 {
		item.StockQuantity = req.StockQuantity
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := h.catalogSvc.UpdateEquipment(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) GetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	item, err := h.catalogSvc.GetEquipment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") != "false"
	items, err := h.catalogSvc.ListEquipment(r.Context(), activeOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: items, TotalCount: int32(len(items)), Page: 1, PageSize: int32(len(items))})
}

func (h *CatalogHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.catalogSvc.ListPlans(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: plans, TotalCount: int32(len(plans)), Page: 1, PageSize: int32(len(plans))})
}

func (h *CatalogHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	plan, err := h.catalogSvc.GetPlan(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// ListInstructors accepts an optional ?tier= filter so the premium checkout
// only offers instructors of the selected plan's tier.
func (h *CatalogHandler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	tier := domain.PlanTier(r.URL.Query().Get("tier"))
	instructors, err := h.catalogSvc.ListInstructors(r.Context(), tier)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: instructors, TotalCount: int32(len(instructors)), Page: 1, PageSize: int32(len(instructors))})
}

func (h *CatalogHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	slots, err := h.catalogSvc.ListSlots(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: slots, TotalCount: int32(len(slots)), Page: 1, PageSize: int32(len(slots))})
}
