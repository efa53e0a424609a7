package ports

import (
	"context"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
)

type AuthService interface {
	// Login resolves the first (email, role) match in storage order and
	// returns a signed session token alongside the user record.
	Login(ctx context.Context, email, password string, role domain.Role) (string, *domain.User, error)
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	Logout(ctx context.Context, userID string) error
}

type RegistrationService interface {
	RegisterStudent(ctx context.Context, name, email, password string, academicYear int) (*domain.User, error)
	RegisterManager(ctx context.Context, name, email, password string) (*domain.User, error)
}

type AllocationService interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	// AvailableRooms filters to the student's eligible building, excluding
	// store rooms and rooms with no free bed.
	AvailableRooms(ctx context.Context, studentID string) ([]domain.Room, error)
	BookRoom(ctx context.Context, studentID, roomID string) (*domain.Room, error)
	SetRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) (*domain.Room, error)
}

type ComplaintService interface {
	ListComplaints(ctx context.Context) ([]domain.Complaint, error)
	StudentComplaints(ctx context.Context, studentID string) ([]domain.Complaint, error)
	FileComplaint(ctx context.Context, studentID string, issue domain.IssueType, description string) (*domain.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, complaintID string, status domain.ComplaintStatus) (*domain.Complaint, error)
}

type BillingService interface {
	ListBills(ctx context.Context) ([]domain.Bill, error)
	StudentBills(ctx context.Context, studentID string) ([]domain.Bill, error)
	// IssueBill upserts by (studentID, month) and forces the status back to
	// UNPAID; nil amounts take the fixed defaults.
	IssueBill(ctx context.Context, studentID, month string, messBill, roomDue *int) (*domain.Bill, error)
	ToggleBillStatus(ctx context.Context, billID string) (*domain.Bill, error)
	StudentDue(ctx context.Context, studentID string) (int, error)
	Stats(ctx context.Context) (*domain.OccupancyStats, error)
}

type ReportService interface {
	// BillingReport renders the comma-separated billing report with its fixed
	// header row.
	BillingReport(ctx context.Context) ([]byte, error)
}
