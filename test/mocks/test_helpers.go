package mocks

import (
	"time"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
)

// CreateTestStudent creates a first-year student fixture.
func CreateTestStudent() domain.User {
	return domain.User{
		ID:           "student-1",
		Name:         "Arjun Rao",
		Email:        "arjun@student.test",
		Password:     "secret",
		Role:         domain.RoleStudent,
		AcademicYear: 1,
	}
}

// CreateTestStudentWithYear creates a student fixture for a given academic year.
func CreateTestStudentWithYear(id string, year int) domain.User {
	return domain.User{
		ID:           id,
		Name:         "Test Student " + id,
		Email:        id + "@student.test",
		Password:     "secret",
		Role:         domain.RoleStudent,
		AcademicYear: year,
	}
}

// CreateTestManager creates a manager fixture.
func CreateTestManager() domain.User {
	return domain.User{
		ID:       "manager-1",
		Name:     "Warden Rao",
		Email:    "warden@hostel.test",
		Password: "secret",
		Role:     domain.RoleManager,
	}
}

// CreateTestRoom creates an empty first-year room fixture.
func CreateTestRoom() domain.Room {
	return domain.Room{
		ID:         "hemavati-1",
		BuildingID: "hemavati",
		RoomNumber: "H001",
		Status:     domain.RoomAvailable,
	}
}

// CreateTestComplaint creates a pending complaint fixture.
func CreateTestComplaint(id, studentID string) domain.Complaint {
	return domain.Complaint{
		ID:          id,
		StudentID:   studentID,
		RoomID:      "hemavati-1",
		BuildingID:  "hemavati",
		IssueType:   domain.IssueFan,
		Description: "fan not spinning",
		Status:      domain.ComplaintPending,
		CreatedAt:   time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

// CreateTestBills creates five bill fixtures for two students, three of them
// unpaid. Totals: 4000 + 4000 + 3000 unpaid, 4000 + 5000 paid.
func CreateTestBills() []domain.Bill {
	return []domain.Bill{
		{ID: "bill-1", StudentID: "student-1", Month: "January", MessBill: 2500, RoomDue: 1500, Status: domain.BillUnpaid},
		{ID: "bill-2", StudentID: "student-1", Month: "February", MessBill: 2500, RoomDue: 1500, Status: domain.BillPaid},
		{ID: "bill-3", StudentID: "student-1", Month: "March", MessBill: 2000, RoomDue: 1000, Status: domain.BillUnpaid},
		{ID: "bill-4", StudentID: "student-2", Month: "January", MessBill: 2500, RoomDue: 1500, Status: domain.BillUnpaid},
		{ID: "bill-5", StudentID: "student-2", Month: "February", MessBill: 3000, RoomDue: 2000, Status: domain.BillPaid},
	}
}
