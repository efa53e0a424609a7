package services

import (
	"context"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type AllocationService struct {
	repo     ports.HostelRepository
	sessions ports.SessionStore
}

var _ ports.AllocationService = (*AllocationService)(nil)

func NewAllocationService(repo ports.HostelRepository, sessions ports.SessionStore) *AllocationService {
	return &AllocationService{repo: repo, sessions: sessions}
}

func (s *AllocationService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.repo.Rooms(ctx)
}

// AvailableRooms returns the bookable rooms of the student's eligible
// building: not a store room, at least one free bed.
func (s *AllocationService) AvailableRooms(ctx context.Context, studentID string) ([]domain.Room, error) {
	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	student, ok := domain.UserByID(users, studentID)
	if !ok || student.Role != domain.RoleStudent {
		return nil, domain.ErrUnknownStudent
	}
	building, ok := domain.BuildingForYear(student.AcademicYear)
	if !ok {
		return nil, domain.ErrInvalidAcademicYear
	}

	rooms, err := s.repo.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	var available []domain.Room
	for _, r := range rooms {
		if r.BuildingID == building.ID && r.Bookable() {
			available = append(available, r)
		}
	}
	return available, nil
}

// BookRoom runs the combined allocation update and refreshes the session slot
// so the stored auth record carries the stamped room cache.
func (s *AllocationService) BookRoom(ctx context.Context, studentID, roomID string) (*domain.Room, error) {
	room, student, err := s.repo.BookRoom(ctx, studentID, roomID)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(ctx, student, sessionTTL); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *AllocationService) SetRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) (*domain.Room, error) {
	switch status {
	case domain.RoomAvailable, domain.RoomStoreRoom:
	default:
		// OCCUPIED is derived from occupancy, never set by hand.
		return nil, domain.ErrInvalidStatus
	}
	room, err := s.repo.SetRoomStatus(ctx, roomID, status)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
