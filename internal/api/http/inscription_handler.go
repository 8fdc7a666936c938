package http

import (
	"context"
	"net/http"
	"strconv"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/pricing"
	"gympoint-backend/internal/service"
)

type InscriptionHandler struct {
	inscriptionSvc service.InscriptionService
}

func NewInscriptionHandler(inscriptionSvc service.InscriptionService) *InscriptionHandler {
	return &InscriptionHandler{inscriptionSvc: inscriptionSvc}
}

type stepPlanResponse struct {
	Tier  domain.PlanTier `json:"tier"`
	Steps []string        `json:"steps"`
	Total int             `json:"total"`
}

// Steps returns the ordered checkout step list for a tier. The console
// renders its progress indicator from this list alone.
func (h *InscriptionHandler) Steps(w http.ResponseWriter, r *http.Request) {
	tier := domain.PlanTier(r.URL.Query().Get("tier"))
	if tier != domain.PlanTierStandard && tier != domain.PlanTierPremium {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tier must be STANDARD or PREMIUM"})
		return
	}

	steps := h.inscriptionSvc.StepPlan(tier)
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = string(s)
	}
	writeJSON(w, http.StatusOK, stepPlanResponse{Tier: tier, Steps: names, Total: len(names)})
}

type createInscriptionRequest struct {
	CustomerID    int32  `json:"customer_id"`
	PlanID        int32  `json:"plan_id"`
	InstructorID  *int32 `json:"instructor_id,omitempty"`
	SlotID        *int32 `json:"slot_id,omitempty"`
	StartDate     string `json:"start_date"`
	PaymentMethod string `json:"payment_method"`
	Tendered      string `json:"tendered"`
}

func (h *InscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	method, tenderedCents, err := parsePayment(req.PaymentMethod, req.Tendered)
	if err != nil {
		writeError(w, err)
		return
	}

	ins, receipt, err := h.inscriptionSvc.Create(r.Context(), service.CreateInscriptionRequest{
		ActorID:        actorID(r.Context()),
		CustomerID:     req.CustomerID,
		PlanID:         req.PlanID,
		InstructorID:   req.InstructorID,
		SlotID:         req.SlotID,
		StartDate:      req.StartDate,
		PaymentMethod:  method,
		TenderedCents:  tenderedCents,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderResponse{Inscription: ins, Receipt: receipt})
}

func (h *InscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	ins, err := h.inscriptionSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ins)
}

func (h *InscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	var customerID int32
	if raw := r.URL.Query().Get("customer_id"); raw != "" {
		id, err := parseInt32(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid customer_id"})
			return
		}
		customerID = id
	}
	status := r.URL.Query().Get("status")

	inscriptions, count, err := h.inscriptionSvc.List(r.Context(), customerID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: inscriptions, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *InscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.inscriptionSvc.Cancel)
}

func (h *InscriptionHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.inscriptionSvc.Suspend)
}

func (h *InscriptionHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.inscriptionSvc.Resume)
}

func (h *InscriptionHandler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, actorID, id int32) (*domain.Inscription, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	ins, err := apply(r.Context(), actorID(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ins)
}

// parsePayment canonicalizes a method string and converts the tendered
// decimal amount to cents. An empty tendered amount means zero, which
// Reconcile accepts for non-cash methods.
func parsePayment(methodStr, tendered string) (domain.PaymentMethod, int64, error) {
	method, err := domain.ParsePaymentMethod(methodStr)
	if err != nil {
		return "", 0, err
	}
	if tendered == "" {
		return method, 0, nil
	}
	cents, err := pricing.ParseAmount(tendered)
	if err != nil {
		return "", 0, err
	}
	return method, cents, nil
}

func parseInt32(raw string) (int32, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
