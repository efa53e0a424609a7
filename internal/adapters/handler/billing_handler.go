package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/metrics"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/middleware"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type BillingHandler struct {
	billingService ports.BillingService
}

func NewBillingHandler(billing ports.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billing}
}

// List returns every bill for managers and only the caller's own for
// students.
func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	role := r.Context().Value(middleware.RoleKey).(string)
	userID := r.Context().Value(middleware.UserIDKey).(string)

	var bills []domain.Bill
	var err error
	if role == string(domain.RoleManager) {
		bills, err = h.billingService.ListBills(r.Context())
	} else {
		bills, err = h.billingService.StudentBills(r.Context(), userID)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bills)
}

type IssueBillRequest struct {
	StudentID string `json:"student_id"`
	Month     string `json:"month"`
	MessBill  *int   `json:"mess_bill,omitempty"`
	RoomDue   *int   `json:"room_due,omitempty"`
}

// Issue upserts the bill for (student, month); omitted amounts take the
// defaults and any prior payment state resets to UNPAID.
func (h *BillingHandler) Issue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req IssueBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	bill, err := h.billingService.IssueBill(r.Context(), req.StudentID, req.Month, req.MessBill, req.RoomDue)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.BillsIssuedTotal.Inc()
	writeJSON(w, http.StatusCreated, bill)
}

type ToggleBillRequest struct {
	BillID string `json:"bill_id"`
}

func (h *BillingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ToggleBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	bill, err := h.billingService.ToggleBillStatus(r.Context(), req.BillID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

// Due returns the caller's outstanding amount.
func (h *BillingHandler) Due(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.Context().Value(middleware.UserIDKey).(string)
	due, err := h.billingService.StudentDue(r.Context(), userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"due": due})
}

// Stats returns the derived occupancy and billing aggregates.
func (h *BillingHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := h.billingService.Stats(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
