package http

import (
	"net/http"

	"gympoint-backend/internal/domain"
	"gympoint-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type quoteRequest struct {
	StartDate string                      `json:"start_date"`
	EndDate   string                      `json:"end_date"`
	Lines     []service.RentalLineRequest `json:"lines"`
}

// Quote prices an order without creating anything. The console renders this
// preview, but the create path recomputes the same numbers server-side.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.rentalSvc.Quote(r.Context(), req.StartDate, req.EndDate, req.Lines)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type createRentalRequest struct {
	CustomerID    int32                       `json:"customer_id"`
	StartDate     string                      `json:"start_date"`
	EndDate       string                      `json:"end_date"`
	Lines         []service.RentalLineRequest `json:"lines"`
	PaymentMethod string                      `json:"payment_method"`
	Tendered      string                      `json:"tendered"`
}

type orderResponse struct {
	Rental      *domain.Rental      `json:"rental,omitempty"`
	Inscription *domain.Inscription `json:"inscription,omitempty"`
	Receipt     *domain.Receipt     `json:"receipt"`
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	method, tenderedCents, err := parsePayment(req.PaymentMethod, req.Tendered)
	if err != nil {
		writeError(w, err)
		return
	}

	rental, receipt, err := h.rentalSvc.Create(r.Context(), service.CreateRentalRequest{
		ActorID:        actorID(r.Context()),
		CustomerID:     req.CustomerID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Lines:          req.Lines,
		PaymentMethod:  method,
		TenderedCents:  tenderedCents,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderResponse{Rental: rental, Receipt: receipt})
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentalSvc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
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

	rentals, count, err := h.rentalSvc.List(r.Context(), customerID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: rentals, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *RentalHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentalSvc.Cancel(r.Context(), actorID(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) RegisterReturn(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentalSvc.RegisterReturn(r.Context(), actorID(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
