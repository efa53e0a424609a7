package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeDomainError maps rule violations to HTTP status codes. Anything not a
// known sentinel is a storage or infrastructure failure.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrUnknownRoom),
		errors.Is(err, domain.ErrUnknownStudent),
		errors.Is(err, domain.ErrUnknownComplaint),
		errors.Is(err, domain.ErrUnknownBill),
		errors.Is(err, domain.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrRoomFull),
		errors.Is(err, domain.ErrStoreRoom),
		errors.Is(err, domain.ErrRoomOccupied),
		errors.Is(err, domain.ErrAlreadyAllocated),
		errors.Is(err, domain.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrWrongBuilding),
		errors.Is(err, domain.ErrNoRoomAllocated),
		errors.Is(err, domain.ErrInvalidAcademicYear),
		errors.Is(err, domain.ErrInvalidIssueType),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidMonth),
		errors.Is(err, domain.ErrNegativeAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Internal error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
