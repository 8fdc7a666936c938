package http

import (
	"net/http"

	"gympoint-backend/internal/service"
)

type ReceiptHandler struct {
	receiptSvc service.ReceiptService
}

func NewReceiptHandler(receiptSvc service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptSvc: receiptSvc}
}

func (h *ReceiptHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	page, pageSize := pagination(r)

	receipts, count, err := h.receiptSvc.ListByCustomer(r.Context(), customerID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Items: receipts, TotalCount: count, Page: page, PageSize: pageSize})
}
