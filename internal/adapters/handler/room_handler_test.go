package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/adapters/middleware"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
)

// stubAllocationService lets handler tests script the service layer.
type stubAllocationService struct {
	rooms     []domain.Room
	available []domain.Room
	booked    *domain.Room
	err       error
}

func (s *stubAllocationService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms, s.err
}

func (s *stubAllocationService) AvailableRooms(ctx context.Context, studentID string) ([]domain.Room, error) {
	return s.available, s.err
}

func (s *stubAllocationService) BookRoom(ctx context.Context, studentID, roomID string) (*domain.Room, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booked, nil
}

func (s *stubAllocationService) SetRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) (*domain.Room, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booked, nil
}

func withUserID(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
	return r.WithContext(ctx)
}

func TestRoomHandler_List(t *testing.T) {
	svc := &stubAllocationService{rooms: []domain.Room{
		{ID: "hemavati-1", BuildingID: "hemavati", RoomNumber: "H001", Status: domain.RoomAvailable},
		{ID: "kaveri-1", BuildingID: "kaveri", RoomNumber: "K001", Status: domain.RoomAvailable},
	}}
	h := NewRoomHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/rooms?building_id=kaveri", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rooms []domain.Room
	if err := json.NewDecoder(rec.Body).Decode(&rooms); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(rooms) != 1 || rooms[0].BuildingID != "kaveri" {
		t.Errorf("building filter not applied: %v", rooms)
	}
}

func TestRoomHandler_List_MethodNotAllowed(t *testing.T) {
	h := NewRoomHandler(&stubAllocationService{})

	req := httptest.NewRequest(http.MethodPost, "/rooms", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestRoomHandler_Book(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"booking_succeeds", nil, http.StatusOK},
		{"store_room_conflict", domain.ErrStoreRoom, http.StatusConflict},
		{"full_room_conflict", domain.ErrRoomFull, http.StatusConflict},
		{"already_allocated_conflict", domain.ErrAlreadyAllocated, http.StatusConflict},
		{"wrong_building_bad_request", domain.ErrWrongBuilding, http.StatusBadRequest},
		{"unknown_room_not_found", domain.ErrUnknownRoom, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booked := domain.Room{ID: "hemavati-1", BuildingID: "hemavati", RoomNumber: "H001", Status: domain.RoomAvailable, OccupiedBy: []string{"student-1"}}
			h := NewRoomHandler(&stubAllocationService{booked: &booked, err: tt.serviceErr})

			body, _ := json.Marshal(BookRoomRequest{RoomID: "hemavati-1"})
			req := httptest.NewRequest(http.MethodPost, "/rooms/book", bytes.NewReader(body))
			req = withUserID(req, "student-1")
			rec := httptest.NewRecorder()

			h.Book(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				var room domain.Room
				if err := json.NewDecoder(rec.Body).Decode(&room); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if room.ID != booked.ID {
					t.Errorf("response room = %s, want %s", room.ID, booked.ID)
				}
			}
		})
	}
}

func TestRoomHandler_Book_InvalidBody(t *testing.T) {
	h := NewRoomHandler(&stubAllocationService{})

	req := httptest.NewRequest(http.MethodPost, "/rooms/book", bytes.NewReader([]byte("{")))
	req = withUserID(req, "student-1")
	rec := httptest.NewRecorder()
	h.Book(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRoomHandler_SetStatus(t *testing.T) {
	room := domain.Room{ID: "hemavati-1", Status: domain.RoomStoreRoom}
	h := NewRoomHandler(&stubAllocationService{booked: &room})

	body, _ := json.Marshal(SetRoomStatusRequest{RoomID: "hemavati-1", Status: "STORE_ROOM"})
	req := httptest.NewRequest(http.MethodPost, "/rooms/status", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.SetStatus(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	h = NewRoomHandler(&stubAllocationService{err: domain.ErrRoomOccupied})
	req = httptest.NewRequest(http.MethodPost, "/rooms/status", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	h.SetStatus(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 for occupied room", rec.Code)
	}
}
