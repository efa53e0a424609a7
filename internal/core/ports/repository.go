package ports

import (
	"context"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
)

// HostelRepository exposes the typed collection operations the rules need.
// Every call is a synchronous read-modify-write over the full collection; two
// collections are only ever touched together inside BookRoom, which runs as a
// single store transaction.
type HostelRepository interface {
	Users(ctx context.Context) ([]domain.User, error)
	// AppendUser adds a user, rejecting a duplicate (email, role) pair with
	// domain.ErrEmailTaken.
	AppendUser(ctx context.Context, user domain.User) error

	// Rooms materializes the generated room set when the collection slot has
	// never been written.
	Rooms(ctx context.Context) ([]domain.Room, error)
	ReplaceRoom(ctx context.Context, room domain.Room) error
	// BookRoom applies the allocation rule and stamps the student's
	// room/building cache in one transaction, enqueuing a booking event.
	BookRoom(ctx context.Context, studentID, roomID string) (domain.Room, domain.User, error)
	SetRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) (domain.Room, error)

	// Complaints returns the collection newest-first.
	Complaints(ctx context.Context) ([]domain.Complaint, error)
	PrependComplaint(ctx context.Context, complaint domain.Complaint, outboxPayload []byte) error
	ReplaceComplaint(ctx context.Context, complaint domain.Complaint) error

	Bills(ctx context.Context) ([]domain.Bill, error)
	// UpsertBill replaces the first bill matching (StudentID, Month) or
	// appends when none exists.
	UpsertBill(ctx context.Context, bill domain.Bill, outboxPayload []byte) error
}
