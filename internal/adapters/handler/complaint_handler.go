package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/metrics"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/middleware"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type ComplaintHandler struct {
	complaintService ports.ComplaintService
}

func NewComplaintHandler(complaints ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaints}
}

// List returns every complaint for managers and only the caller's own for
// students, newest first in both cases.
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	role := r.Context().Value(middleware.RoleKey).(string)
	userID := r.Context().Value(middleware.UserIDKey).(string)

	var complaints []domain.Complaint
	var err error
	if role == string(domain.RoleManager) {
		complaints, err = h.complaintService.ListComplaints(r.Context())
	} else {
		complaints, err = h.complaintService.StudentComplaints(r.Context(), userID)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaints)
}

type FileComplaintRequest struct {
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
}

func (h *ComplaintHandler) File(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req FileComplaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	studentID := r.Context().Value(middleware.UserIDKey).(string)
	complaint, err := h.complaintService.FileComplaint(r.Context(), studentID, domain.IssueType(req.IssueType), req.Description)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.ComplaintsFiledTotal.Inc()
	writeJSON(w, http.StatusCreated, complaint)
}

type UpdateComplaintStatusRequest struct {
	ComplaintID string `json:"complaint_id"`
	Status      string `json:"status"`
}

func (h *ComplaintHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req UpdateComplaintStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	complaint, err := h.complaintService.UpdateComplaintStatus(r.Context(), req.ComplaintID, domain.ComplaintStatus(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, complaint)
}
