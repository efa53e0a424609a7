package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

// Collection slot keys. Each key addresses the full serialized collection.
const (
	KeyUsers      = "hostel_users"
	KeyRooms      = "hostel_rooms"
	KeyComplaints = "hostel_complaints"
	KeyBills      = "hostel_bills"
)

// StoreRepository implements the typed collection operations on top of a
// RecordStore. It owns no state: every operation re-reads the collections it
// touches inside its own store transaction.
type StoreRepository struct {
	store ports.RecordStore
}

var _ ports.HostelRepository = (*StoreRepository)(nil)

func NewStoreRepository(store ports.RecordStore) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) Users(ctx context.Context) ([]domain.User, error) {
	data, found, err := r.store.Read(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return decodeUsers(data)
}

func (r *StoreRepository) AppendUser(ctx context.Context, user domain.User) error {
	return r.store.Update(ctx, func(tx ports.RecordTx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		if _, exists := domain.FindUser(users, user.Email, user.Role); exists {
			return domain.ErrEmailTaken
		}
		return writeUsers(tx, append(users, user))
	})
}

// Rooms materializes the generated set when the slot has never been written.
// The generated default is not persisted: the first mutation writes the full
// collection.
func (r *StoreRepository) Rooms(ctx context.Context) ([]domain.Room, error) {
	data, found, err := r.store.Read(ctx, KeyRooms)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.GenerateInitialRooms(), nil
	}
	return decodeRooms(data)
}

func (r *StoreRepository) ReplaceRoom(ctx context.Context, room domain.Room) error {
	return r.store.Update(ctx, func(tx ports.RecordTx) error {
		rooms, err := readRooms(tx)
		if err != nil {
			return err
		}
		replaced := false
		for i := range rooms {
			if rooms[i].ID == room.ID {
				rooms[i] = room
				replaced = true
				break
			}
		}
		if !replaced {
			return domain.ErrUnknownRoom
		}
		return writeRooms(tx, rooms)
	})
}

// BookRoom is the combined allocation update: it applies the allocation rule,
// stamps the student's room/building cache, and enqueues the booking event,
// all against one store snapshot.
func (r *StoreRepository) BookRoom(ctx context.Context, studentID, roomID string) (domain.Room, domain.User, error) {
	var bookedRoom domain.Room
	var bookedBy domain.User

	err := r.store.Update(ctx, func(tx ports.RecordTx) error {
		users, err := readUsers(tx)
		if err != nil {
			return err
		}
		student, ok := domain.UserByID(users, studentID)
		if !ok || student.Role != domain.RoleStudent {
			return domain.ErrUnknownStudent
		}

		rooms, err := readRooms(tx)
		if err != nil {
			return err
		}
		if _, housed := domain.RoomOf(rooms, studentID); housed {
			return domain.ErrAlreadyAllocated
		}
		room, ok := domain.RoomByID(rooms, roomID)
		if !ok {
			return domain.ErrUnknownRoom
		}
		building, ok := domain.BuildingForYear(student.AcademicYear)
		if !ok || building.ID != room.BuildingID {
			return domain.ErrWrongBuilding
		}

		updated, err := domain.Allocate(room, studentID)
		if err != nil {
			return err
		}
		for i := range rooms {
			if rooms[i].ID == updated.ID {
				rooms[i] = updated
			}
		}

		student.RoomNumber = updated.RoomNumber
		student.BuildingID = updated.BuildingID
		for i := range users {
			if users[i].ID == student.ID {
				users[i] = student
			}
		}

		if err := writeRooms(tx, rooms); err != nil {
			return err
		}
		if err := writeUsers(tx, users); err != nil {
			return err
		}

		payload, err := json.Marshal(ports.RoomBookedEvent{
			StudentID:  student.ID,
			RoomID:     updated.ID,
			RoomNumber: updated.RoomNumber,
			BuildingID: updated.BuildingID,
			Occupants:  len(updated.OccupiedBy),
		})
		if err != nil {
			return err
		}
		if err := tx.Enqueue(ports.EventRoomBooked, payload); err != nil {
			return err
		}

		bookedRoom = updated
		bookedBy = student
		return nil
	})
	if err != nil {
		return domain.Room{}, domain.User{}, err
	}
	return bookedRoom, bookedBy, nil
}

func (r *StoreRepository) SetRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus) (domain.Room, error) {
	var updated domain.Room
	err := r.store.Update(ctx, func(tx ports.RecordTx) error {
		rooms, err := readRooms(tx)
		if err != nil {
			return err
		}
		for i := range rooms {
			if rooms[i].ID == roomID {
				room, err := domain.SetStatus(rooms[i], status)
				if err != nil {
					return err
				}
				rooms[i] = room
				updated = room
				return writeRooms(tx, rooms)
			}
		}
		return domain.ErrUnknownRoom
	})
	if err != nil {
		return domain.Room{}, err
	}
	return updated, nil
}

func (r *StoreRepository) Complaints(ctx context.Context) ([]domain.Complaint, error) {
	data, found, err := r.store.Read(ctx, KeyComplaints)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return decodeComplaints(data)
}

// PrependComplaint inserts at the head so the collection stays newest-first.
func (r *StoreRepository) PrependComplaint(ctx context.Context, complaint domain.Complaint, outboxPayload []byte) error {
	return r.store.Update(ctx, func(tx ports.RecordTx) error {
		complaints, err := readComplaints(tx)
		if err != nil {
			return err
		}
		complaints = append([]domain.Complaint{complaint}, complaints...)
		if err := writeComplaints(tx, complaints); err != nil {
			return err
		}
		if outboxPayload != nil {
			return tx.Enqueue(ports.EventComplaintFiled, outboxPayload)
		}
		return nil
	})
}

func (r *StoreRepository) ReplaceComplaint(ctx context.Context, complaint domain.Complaint) error {
	return r.store.Update(ctx, func(tx ports.RecordTx) error {
		complaints, err := readComplaints(tx)
		if err != nil {
			return err
		}
		for i := range complaints {
			if complaints[i].ID == complaint.ID {
				complaints[i] = complaint
				return writeComplaints(tx, complaints)
			}
		}
		return domain.ErrUnknownComplaint
	})
}

func (r *StoreRepository) Bills(ctx context.Context) ([]domain.Bill, error) {
	data, found, err := r.store.Read(ctx, KeyBills)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return decodeBills(data)
}

// UpsertBill replaces the first bill matching (StudentID, Month) or appends
// when none exists, keeping the one-bill-per-student-per-month invariant.
func (r *StoreRepository) UpsertBill(ctx context.Context, bill domain.Bill, outboxPayload []byte) error {
	return r.store.Update(ctx, func(tx ports.RecordTx) error {
		bills, err := readBills(tx)
		if err != nil {
			return err
		}
		replaced := false
		for i := range bills {
			if bills[i].StudentID == bill.StudentID && bills[i].Month == bill.Month {
				bills[i] = bill
				replaced = true
				break
			}
		}
		if !replaced {
			bills = append(bills, bill)
		}
		if err := writeBills(tx, bills); err != nil {
			return err
		}
		if outboxPayload != nil {
			return tx.Enqueue(ports.EventBillIssued, outboxPayload)
		}
		return nil
	})
}

// Serialization helpers. Collections round-trip through JSON; optional fields
// are represented by absence.

func readUsers(tx ports.RecordTx) ([]domain.User, error) {
	data, found, err := tx.Read(KeyUsers)
	if err != nil || !found {
		return nil, err
	}
	return decodeUsers(data)
}

func writeUsers(tx ports.RecordTx, users []domain.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return tx.Write(KeyUsers, data)
}

func readRooms(tx ports.RecordTx) ([]domain.Room, error) {
	data, found, err := tx.Read(KeyRooms)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.GenerateInitialRooms(), nil
	}
	return decodeRooms(data)
}

func writeRooms(tx ports.RecordTx, rooms []domain.Room) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return tx.Write(KeyRooms, data)
}

func readComplaints(tx ports.RecordTx) ([]domain.Complaint, error) {
	data, found, err := tx.Read(KeyComplaints)
	if err != nil || !found {
		return nil, err
	}
	return decodeComplaints(data)
}

func writeComplaints(tx ports.RecordTx, complaints []domain.Complaint) error {
	data, err := json.Marshal(complaints)
	if err != nil {
		return err
	}
	return tx.Write(KeyComplaints, data)
}

func readBills(tx ports.RecordTx) ([]domain.Bill, error) {
	data, found, err := tx.Read(KeyBills)
	if err != nil || !found {
		return nil, err
	}
	return decodeBills(data)
}

func writeBills(tx ports.RecordTx, bills []domain.Bill) error {
	data, err := json.Marshal(bills)
	if err != nil {
		return err
	}
	return tx.Write(KeyBills, data)
}

func decodeUsers(data []byte) ([]domain.User, error) {
	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyUsers, err)
	}
	return users, nil
}

func decodeRooms(data []byte) ([]domain.Room, error) {
	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyRooms, err)
	}
	return rooms, nil
}

func decodeComplaints(data []byte) ([]domain.Complaint, error) {
	var complaints []domain.Complaint
	if err := json.Unmarshal(data, &complaints); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyComplaints, err)
	}
	return complaints, nil
}

func decodeBills(data []byte) ([]domain.Bill, error) {
	var bills []domain.Bill
	if err := json.Unmarshal(data, &bills); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeyBills, err)
	}
	return bills, nil
}
