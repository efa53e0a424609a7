package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type BillingService struct {
	repo ports.HostelRepository
}

var _ ports.BillingService = (*BillingService)(nil)

func NewBillingService(repo ports.HostelRepository) *BillingService {
	return &BillingService{repo: repo}
}

func (s *BillingService) ListBills(ctx context.Context) ([]domain.Bill, error) {
	return s.repo.Bills(ctx)
}

func (s *BillingService) StudentBills(ctx context.Context, studentID string) ([]domain.Bill, error) {
	bills, err := s.repo.Bills(ctx)
	if err != nil {
		return nil, err
	}
	var own []domain.Bill
	for _, b := range bills {
		if b.StudentID == studentID {
			own = append(own, b)
		}
	}
	return own, nil
}

// IssueBill upserts the bill for (studentID, month). Re-issuing regenerates
// the invoice: new amounts, status forced back to UNPAID. Nil amounts take
// the fixed defaults.
func (s *BillingService) IssueBill(ctx context.Context, studentID, month string, messBill, roomDue *int) (*domain.Bill, error) {
	if !domain.ValidMonth(month) {
		return nil, domain.ErrInvalidMonth
	}

	mess := domain.DefaultMessBill
	if messBill != nil {
		mess = *messBill
	}
	room := domain.DefaultRoomDue
	if roomDue != nil {
		room = *roomDue
	}
	if mess < 0 || room < 0 {
		return nil, domain.ErrNegativeAmount
	}

	users, err := s.repo.Users(ctx)
	if err != nil {
		return nil, err
	}
	student, ok := domain.UserByID(users, studentID)
	if !ok || student.Role != domain.RoleStudent {
		return nil, domain.ErrUnknownStudent
	}

	bill := domain.Bill{
		ID:        uuid.NewString(),
		StudentID: student.ID,
		Month:     month,
		MessBill:  mess,
		RoomDue:   room,
		Status:    domain.BillUnpaid,
	}

	payload, err := json.Marshal(ports.BillIssuedEvent{
		BillID:    bill.ID,
		StudentID: bill.StudentID,
		Month:     bill.Month,
		Total:     bill.Total(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertBill(ctx, bill, payload); err != nil {
		return nil, err
	}
	return &bill, nil
}

// ToggleBillStatus flips PAID and UNPAID with amounts untouched.
func (s *BillingService) ToggleBillStatus(ctx context.Context, billID string) (*domain.Bill, error) {
	bills, err := s.repo.Bills(ctx)
	if err != nil {
		return nil, err
	}
	bill, ok := domain.BillByID(bills, billID)
	if !ok {
		return nil, domain.ErrUnknownBill
	}

	bill = domain.ToggleBillStatus(bill)
	if err := s.repo.UpsertBill(ctx, bill, nil); err != nil {
		return nil, err
	}
	return &bill, nil
}

func (s *BillingService) StudentDue(ctx context.Context, studentID string) (int, error) {
	bills, err := s.repo.Bills(ctx)
	if err != nil {
		return 0, err
	}
	return domain.StudentDue(bills, studentID), nil
}

// Stats recomputes the dashboard aggregates from the full collections.
func (s *BillingService) Stats(ctx context.Context) (*domain.OccupancyStats, error) {
	rooms, err := s.repo.Rooms(ctx)
	if err != nil {
		return nil, err
	}
	complaints, err := s.repo.Complaints(ctx)
	if err != nil {
		return nil, err
	}
	bills, err := s.repo.Bills(ctx)
	if err != nil {
		return nil, err
	}
	stats := domain.ComputeStats(rooms, complaints, bills)
	return &stats, nil
}
