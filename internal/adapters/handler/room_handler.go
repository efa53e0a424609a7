package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/metrics"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/middleware"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type RoomHandler struct {
	allocationService ports.AllocationService
}

func NewRoomHandler(allocation ports.AllocationService) *RoomHandler {
	return &RoomHandler{allocationService: allocation}
}

// List returns the full room set, optionally filtered by building.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rooms, err := h.allocationService.ListRooms(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if buildingID := r.URL.Query().Get("building_id"); buildingID != "" {
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.BuildingID == buildingID {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	writeJSON(w, http.StatusOK, rooms)
}

// Available returns the bookable rooms of the calling student's building.
func (h *RoomHandler) Available(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	studentID := r.Context().Value(middleware.UserIDKey).(string)
	rooms, err := h.allocationService.AvailableRooms(r.Context(), studentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

type BookRoomRequest struct {
	RoomID string `json:"room_id"`
}

func (h *RoomHandler) Book(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req BookRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	studentID := r.Context().Value(middleware.UserIDKey).(string)
	room, err := h.allocationService.BookRoom(r.Context(), studentID, req.RoomID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	metrics.RoomBookingsTotal.Inc()
	writeJSON(w, http.StatusOK, room)
}

type SetRoomStatusRequest struct {
	RoomID string `json:"room_id"`
	Status string `json:"status"`
}

// SetStatus toggles a room between AVAILABLE and STORE_ROOM.
func (h *RoomHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SetRoomStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	room, err := h.allocationService.SetRoomStatus(r.Context(), req.RoomID, domain.RoomStatus(req.Status))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}
