package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type RegistrationHandler struct {
	registrationService ports.RegistrationService
}

func NewRegistrationHandler(registration ports.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registration}
}

type RegistrationRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	AcademicYear int    `json:"academic_year,omitempty"`
}

type RegistrationResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var user *domain.User
	var err error

	switch domain.Role(req.Role) {
	case domain.RoleStudent:
		user, err = h.registrationService.RegisterStudent(r.Context(), req.Name, req.Email, req.Password, req.AcademicYear)
	case domain.RoleManager:
		user, err = h.registrationService.RegisterManager(r.Context(), req.Name, req.Email, req.Password)
	default:
		http.Error(w, "Unsupported role", http.StatusBadRequest)
		return
	}

	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, RegistrationResponse{
		Message: "Registered successfully",
		User:    user,
	})
}
