package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type ComplaintService struct {
	repo ports.HostelRepository
}

var _ ports.ComplaintService = (*ComplaintService)(nil)

func NewComplaintService(repo ports.HostelRepository) *ComplaintService {
	return &ComplaintService{repo: repo}
}

func (s *ComplaintService) ListComplaints(ctx context.Context) ([]domain.Complaint, error) {
	return s.repo.Complaints(ctx)
}

func (s *ComplaintService) StudentComplaints(ctx context.Context, studentID string) ([]domain.Complaint, error) {
	complaints, err := s.repo.Complaints(ctx)
	if err != nil {
		return nil, err
	}
	var own []domain.Complaint
	for _, c := range complaints {
		if c.StudentID == studentID {
			own = append(own, c)
		}
	}
	return own, nil
}

// FileComplaint creates a PENDING ticket for the student's occupied room. The
// room and building references are copied from the allocation at this moment
// and never re-derived.
func (s *ComplaintService) FileComplaint(ctx context.Context, studentID string, issue domain.IssueType, description string) (*domain.Complaint, error) {
	if !domain.ValidIssueType(issue) {
		return nil, domain.ErrInvalidIssueType
	}

	rooms, err := s.repo.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	room, ok := domain.RoomOf(rooms, studentID)
	if !ok {
		return nil, domain.ErrNoRoomAllocated
	}

	complaint := domain.Complaint{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		RoomID:      room.ID,
		BuildingID:  room.BuildingID,
		IssueType:   issue,
		Description: description,
		Status:      domain.ComplaintPending,
		CreatedAt:   time.Now().UTC(),
	}

	payload, err := json.Marshal(ports.ComplaintFiledEvent{
		ComplaintID: complaint.ID,
		StudentID:   complaint.StudentID,
		RoomID:      complaint.RoomID,
		IssueType:   string(complaint.IssueType),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.PrependComplaint(ctx, complaint, payload); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// UpdateComplaintStatus sets any known status from any status; a RESOLVED
// ticket can be reopened.
func (s *ComplaintService) UpdateComplaintStatus(ctx context.Context, complaintID string, status domain.ComplaintStatus) (*domain.Complaint, error) {
	if !domain.ValidComplaintStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	complaints, err := s.repo.Complaints(ctx)
	if err != nil {
		return nil, err
	}
	complaint, ok := domain.ComplaintByID(complaints, complaintID)
	if !ok {
		return nil, domain.ErrUnknownComplaint
	}

	complaint.Status = status
	if err := s.repo.ReplaceComplaint(ctx, complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}
