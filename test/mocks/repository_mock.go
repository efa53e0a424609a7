package mocks

import (
	"context"
	"sync"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// MockHostelRepository implements ports.HostelRepository for testing.
// This mock allows us to test services without a real database connection.
//
// How mocking works in hexagonal architecture:
// 1. The service depends on ports.HostelRepository interface (not concrete implementation)
// 2. In production, we inject StoreRepository (real database)
// 3. In tests, we inject MockHostelRepository (in-memory)
// 4. The service works the same way regardless of which implementation is used
type MockHostelRepository struct {
	mu sync.RWMutex

	// In-memory collections for testing
	users      []domain.User
	rooms      []domain.Room
	complaints []domain.Complaint
	bills      []domain.Bill

	// Outbox payloads captured from the event-carrying operations
	BookRoomEvents  int
	ComplaintEvents [][]byte
	BillEvents      [][]byte

	// Call tracking for verification
	AppendUserCalls       []domain.User
	BookRoomCalls         [][2]string
	SetRoomStatusCalls    []string
	PrependComplaintCalls []domain.Complaint
	UpsertBillCalls       []domain.Bill

	// Error injection for testing error scenarios
	UsersError            error
	AppendUserError       error
	RoomsError            error
	ReplaceRoomError      error
	BookRoomError         error
	SetRoomStatusError    error
	ComplaintsError       error
	PrependComplaintError error
	ReplaceComplaintError error
	BillsError            error
	UpsertBillError       error
}

// Ensure MockHostelRepository implements ports.HostelRepository at compile time.
// This is a common Go pattern to catch interface mismatches early.
var _ ports.HostelRepository = (*MockHostelRepository)(nil)

// NewMockHostelRepository creates a new mock repository with empty collections.
func NewMockHostelRepository() *MockHostelRepository {
	return &MockHostelRepository{}
}

// SeedUsers replaces the user collection for test setup.
func (m *MockHostelRepository) SeedUsers(users ...domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append([]domain.User(nil), users...)
}

// SeedRooms replaces the room collection for test setup.
func (m *MockHostelRepository) SeedRooms(rooms ...domain.Room) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms = append([]domain.Room(nil), rooms...)
}

// SeedComplaints replaces the complaint collection for test setup.
func (m *MockHostelRepository) SeedComplaints(complaints ...domain.Complaint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.complaints = append([]domain.Complaint(nil), complaints...)
}

// SeedBills replaces the bill collection for test setup.
func (m *MockHostelRepository) SeedBills(bills ...domain.Bill) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bills = append([]domain.Bill(nil), bills...)
}

// Users implements ports.HostelRepository.Users
func (m *MockHostelRepository) Users(ctx context.Context) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.UsersError != nil {
		return nil, m.UsersError
	}
	return append([]domain.User(nil), m.users...), nil
}

// AppendUser implements ports.HostelRepository.AppendUser
func (m *MockHostelRepository) AppendUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.AppendUserCalls = append(m.AppendUserCalls, user)

	if m.AppendUserError != nil {
		return m.AppendUserError
	}

	if _, ok := domain.FindUser(m.users, user.Email, user.Role); ok {
		return domain.ErrEmailTaken
	}

	m.users = append(m.users, user)
	return nil
}

// Rooms implements ports.HostelRepository.Rooms. Like the real repository it
// materializes the generated room set when nothing has been seeded.
func (m *MockHostelRepository) Rooms(ctx context.Context) ([]domain.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.RoomsError != nil {
		return nil, m.RoomsError
	}
	if m.rooms == nil {
		return domain.GenerateInitialRooms(), nil
	}
	return append([]domain.Room(nil), m.rooms...), nil
}

// ReplaceRoom implements ports.HostelRepository.ReplaceRoom
func (m *MockHostelRepository) ReplaceRoom(ctx context.Context, room domain.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReplaceRoomError != nil {
		return m.ReplaceRoomError
	}

	for i := range m.rooms {
		if m.rooms[i].ID == room.ID {
			m.rooms[i] = room
			return nil
		}
	}
	return domain.ErrUnknownRoom
}

// BookRoom implements ports.HostelRepository.BookRoom with the same rule
// sequence as the real repository.
func (m *MockHostelRepository) BookRoom(ctx context.Context, studentID, roomID string) (domain.Room, domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.BookRoomCalls = append(m.BookRoomCalls, [2]string{studentID, roomID})

	if m.BookRoomError != nil {
		return domain.Room{}, domain.User{}, m.BookRoomError
	}

	student, ok := domain.UserByID(m.users, studentID)
	if !ok || student.Role != domain.RoleStudent {
		return domain.Room{}, domain.User{}, domain.ErrUnknownStudent
	}
	if _, allocated := domain.RoomOf(m.rooms, studentID); allocated {
		return domain.Room{}, domain.User{}, domain.ErrAlreadyAllocated
	}

	room, ok := domain.RoomByID(m.rooms, roomID)
	if !ok {
		return domain.Room{}, domain.User{}, domain.ErrUnknownRoom
	}

	building, ok := domain.BuildingForYear(student.AcademicYear)
	if !ok || building.ID != room.BuildingID {
		return domain.Room{}, domain.User{}, domain.ErrWrongBuilding
	}

	updated, err := domain.Allocate(room, studentID)
	if err != nil {
		return domain.Room{}, domain.User{}, err
	}

	for i := range m.rooms {
		if m.rooms[i].ID == updated.ID {
			m.rooms[i] = updated
		}
	}

	student.RoomNumber = updated.RoomNumber
	student.BuildingID = updated.BuildingID
	for i := range m.users {
		if m.users[i].ID == student.ID {
			m.users[i] = student
		}
	}

	m.BookRoomEvents++
	return updated, student, nil
}

// SetRoomStatus implements ports.HostelRepository.SetRoomStatus
func (m *MockHostelRepository) SetRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) (domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SetRoomStatusCalls = append(m.SetRoomStatusCalls, roomID)

	if m.SetRoomStatusError != nil {
		return domain.Room{}, m.SetRoomStatusError
	}

	room, ok := domain.RoomByID(m.rooms, roomID)
	if !ok {
		return domain.Room{}, domain.ErrUnknownRoom
	}

	updated, err := domain.SetStatus(room, status)
	if err != nil {
		return domain.Room{}, err
	}

	for i := range m.rooms {
		if m.rooms[i].ID == updated.ID {
			m.rooms[i] = updated
		}
	}
	return updated, nil
}

// Complaints implements ports.HostelRepository.Complaints
func (m *MockHostelRepository) Complaints(ctx context.Context) ([]domain.Complaint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.ComplaintsError != nil {
		return nil, m.ComplaintsError
	}
	return append([]domain.Complaint(nil), m.complaints...), nil
}

// PrependComplaint implements ports.HostelRepository.PrependComplaint
func (m *MockHostelRepository) PrependComplaint(ctx context.Context, complaint domain.Complaint, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PrependComplaintCalls = append(m.PrependComplaintCalls, complaint)

	if m.PrependComplaintError != nil {
		return m.PrependComplaintError
	}

	m.complaints = append([]domain.Complaint{complaint}, m.complaints...)
	if outboxPayload != nil {
		m.ComplaintEvents = append(m.ComplaintEvents, outboxPayload)
	}
	return nil
}

// ReplaceComplaint implements ports.HostelRepository.ReplaceComplaint
func (m *MockHostelRepository) ReplaceComplaint(ctx context.Context, complaint domain.Complaint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReplaceComplaintError != nil {
		return m.ReplaceComplaintError
	}

	for i := range m.complaints {
		if m.complaints[i].ID == complaint.ID {
			m.complaints[i] = complaint
			return nil
		}
	}
	return domain.ErrUnknownComplaint
}

// Bills implements ports.HostelRepository.Bills
func (m *MockHostelRepository) Bills(ctx context.Context) ([]domain.Bill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.BillsError != nil {
		return nil, m.BillsError
	}
	return append([]domain.Bill(nil), m.bills...), nil
}

// UpsertBill implements ports.HostelRepository.UpsertBill
func (m *MockHostelRepository) UpsertBill(ctx context.Context, bill domain.Bill, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpsertBillCalls = append(m.UpsertBillCalls, bill)

	if m.UpsertBillError != nil {
		return m.UpsertBillError
	}

	replaced := false
	for i := range m.bills {
		if m.bills[i].StudentID == bill.StudentID && m.bills[i].Month == bill.Month {
			m.bills[i] = bill
			replaced = true
			break
		}
	}
	if !replaced {
		m.bills = append(m.bills, bill)
	}

	if outboxPayload != nil {
		m.BillEvents = append(m.BillEvents, outboxPayload)
	}
	return nil
}
