package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/domain"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/test/mocks"
)

func seedSlot(t *testing.T, store *mocks.MockRecordStore, key string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal seed for %s: %v", key, err)
	}
	store.Seed(key, data)
}

func firstYearStudent(id string) domain.User {
	return domain.User{
		ID:           id,
		Name:         "Student " + id,
		Email:        id + "@student.test",
		Password:     "secret",
		Role:         domain.RoleStudent,
		AcademicYear: 1,
	}
}

func TestStoreRepository_AppendUser(t *testing.T) {
	store := mocks.NewMockRecordStore()
	repo := NewStoreRepository(store)
	ctx := context.Background()

	student := firstYearStudent("s1")
	if err := repo.AppendUser(ctx, student); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same email under a different role is a distinct account.
	manager := domain.User{ID: "m1", Email: student.Email, Role: domain.RoleManager}
	if err := repo.AppendUser(ctx, manager); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same (email, role) pair is rejected and nothing is written.
	dup := firstYearStudent("s2")
	dup.Email = student.Email
	if err := repo.AppendUser(ctx, dup); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	users, err := repo.Users(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestStoreRepository_Rooms_DefaultsNotPersisted(t *testing.T) {
	store := mocks.NewMockRecordStore()
	repo := NewStoreRepository(store)
	ctx := context.Background()

	rooms, err := repo.Rooms(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 173 {
		t.Errorf("expected 173 generated rooms, got %d", len(rooms))
	}

	// Reading the default set must not write the slot.
	if _, found := store.Slot(KeyRooms); found {
		t.Error("room slot should stay empty until the first mutation")
	}
}

func TestStoreRepository_BookRoom(t *testing.T) {
	student := firstYearStudent("s1")

	tests := []struct {
		name      string
		studentID string
		roomID    string
		seedRooms []domain.Room
		wantErr   error
	}{
		{
			name:      "books_generated_default_room",
			studentID: student.ID,
			roomID:    "hemavati-1",
		},
		{
			name:      "store_room_rejected",
			studentID: student.ID,
			roomID:    "hemavati-15",
			wantErr:   domain.ErrStoreRoom,
		},
		{
			name:      "wrong_building_rejected",
			studentID: student.ID,
			roomID:    "kaveri-1",
			wantErr:   domain.ErrWrongBuilding,
		},
		{
			name:      "unknown_room_rejected",
			studentID: student.ID,
			roomID:    "hemavati-999",
			wantErr:   domain.ErrUnknownRoom,
		},
		{
			name:      "unknown_student_rejected",
			studentID: "ghost",
			roomID:    "hemavati-1",
			wantErr:   domain.ErrUnknownStudent,
		},
		{
			name:      "already_allocated_rejected",
			studentID: student.ID,
			roomID:    "hemavati-1",
			seedRooms: []domain.Room{
				{ID: "hemavati-1", BuildingID: "hemavati", RoomNumber: "H001", Status: domain.RoomAvailable},
				{ID: "hemavati-2", BuildingID: "hemavati", RoomNumber: "H002", Status: domain.RoomAvailable, OccupiedBy: []string{student.ID}},
			},
			wantErr: domain.ErrAlreadyAllocated,
		},
		{
			name:      "full_room_rejected",
			studentID: student.ID,
			roomID:    "hemavati-1",
			seedRooms: []domain.Room{
				{ID: "hemavati-1", BuildingID: "hemavati", RoomNumber: "H001", Status: domain.RoomOccupied, OccupiedBy: []string{"a", "b"}},
			},
			wantErr: domain.ErrRoomFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockRecordStore()
			seedSlot(t, store, KeyUsers, []domain.User{student})
			if tt.seedRooms != nil {
				seedSlot(t, store, KeyRooms, tt.seedRooms)
			}
			repo := NewStoreRepository(store)
			ctx := context.Background()

			room, booked, err := repo.BookRoom(ctx, tt.studentID, tt.roomID)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(store.Enqueued) != 0 {
					t.Error("failed booking must not enqueue an event")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if room.OccupiedBy[len(room.OccupiedBy)-1] != tt.studentID {
				t.Errorf("student missing from occupants: %v", room.OccupiedBy)
			}
			if booked.RoomNumber != room.RoomNumber || booked.BuildingID != room.BuildingID {
				t.Errorf("room cache not stamped on user: %+v", booked)
			}

			// Booking against the default set persists the full collection.
			rooms, err := repo.Rooms(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(rooms) != 173 {
				t.Errorf("expected full collection persisted, got %d rooms", len(rooms))
			}

			// The booking event commits with the writes.
			if len(store.Enqueued) != 1 || store.Enqueued[0].EventType != ports.EventRoomBooked {
				t.Fatalf("expected one %s event, got %v", ports.EventRoomBooked, store.Enqueued)
			}
			var evt ports.RoomBookedEvent
			if err := json.Unmarshal(store.Enqueued[0].Payload, &evt); err != nil {
				t.Fatalf("invalid event payload: %v", err)
			}
			if evt.StudentID != tt.studentID || evt.RoomID != room.ID {
				t.Errorf("event does not match booking: %+v", evt)
			}
		})
	}
}

func TestStoreRepository_BookRoom_SecondOccupantFillsRoom(t *testing.T) {
	first := firstYearStudent("s1")
	second := firstYearStudent("s2")

	store := mocks.NewMockRecordStore()
	seedSlot(t, store, KeyUsers, []domain.User{first, second})
	repo := NewStoreRepository(store)
	ctx := context.Background()

	if _, _, err := repo.BookRoom(ctx, first.ID, "hemavati-1"); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	room, _, err := repo.BookRoom(ctx, second.ID, "hemavati-1")
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}
	if room.Status != domain.RoomOccupied {
		t.Errorf("expected OCCUPIED with both beds taken, got %s", room.Status)
	}
	if len(room.OccupiedBy) != 2 || room.OccupiedBy[0] != first.ID {
		t.Errorf("occupants out of booking order: %v", room.OccupiedBy)
	}

	third := firstYearStudent("s3")
	seedThirdUsers, _ := repo.Users(ctx)
	seedSlot(t, store, KeyUsers, append(seedThirdUsers, third))
	if _, _, err := repo.BookRoom(ctx, third.ID, "hemavati-1"); !errors.Is(err, domain.ErrRoomFull) {
		t.Errorf("expected ErrRoomFull on third booking, got %v", err)
	}
}

func TestStoreRepository_SetRoomStatus(t *testing.T) {
	store := mocks.NewMockRecordStore()
	seedSlot(t, store, KeyRooms, []domain.Room{
		{ID: "hemavati-1", BuildingID: "hemavati", RoomNumber: "H001", Status: domain.RoomAvailable},
		{ID: "hemavati-2", BuildingID: "hemavati", RoomNumber: "H002", Status: domain.RoomAvailable, OccupiedBy: []string{"s1"}},
	})
	repo := NewStoreRepository(store)
	ctx := context.Background()

	room, err := repo.SetRoomStatus(ctx, "hemavati-1", domain.RoomStoreRoom)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if room.Status != domain.RoomStoreRoom {
		t.Errorf("expected STORE_ROOM, got %s", room.Status)
	}

	if _, err := repo.SetRoomStatus(ctx, "hemavati-2", domain.RoomStoreRoom); !errors.Is(err, domain.ErrRoomOccupied) {
		t.Errorf("expected ErrRoomOccupied, got %v", err)
	}
	if _, err := repo.SetRoomStatus(ctx, "missing", domain.RoomAvailable); !errors.Is(err, domain.ErrUnknownRoom) {
		t.Errorf("expected ErrUnknownRoom, got %v", err)
	}
}

func TestStoreRepository_PrependComplaint(t *testing.T) {
	store := mocks.NewMockRecordStore()
	repo := NewStoreRepository(store)
	ctx := context.Background()

	older := domain.Complaint{ID: "c1", StudentID: "s1", Status: domain.ComplaintPending}
	newer := domain.Complaint{ID: "c2", StudentID: "s1", Status: domain.ComplaintPending}

	if err := repo.PrependComplaint(ctx, older, []byte(`{"complaint_id":"c1"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.PrependComplaint(ctx, newer, []byte(`{"complaint_id":"c2"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	complaints, err := repo.Complaints(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(complaints) != 2 || complaints[0].ID != "c2" || complaints[1].ID != "c1" {
		t.Errorf("expected newest-first order, got %v", complaints)
	}

	if len(store.Enqueued) != 2 {
		t.Fatalf("expected 2 enqueued events, got %d", len(store.Enqueued))
	}
	for _, e := range store.Enqueued {
		if e.EventType != ports.EventComplaintFiled {
			t.Errorf("unexpected event type %s", e.EventType)
		}
	}
}

func TestStoreRepository_ReplaceComplaint(t *testing.T) {
	store := mocks.NewMockRecordStore()
	seedSlot(t, store, KeyComplaints, []domain.Complaint{
		{ID: "c1", StudentID: "s1", Status: domain.ComplaintPending},
	})
	repo := NewStoreRepository(store)
	ctx := context.Background()

	updated := domain.Complaint{ID: "c1", StudentID: "s1", Status: domain.ComplaintResolved}
	if err := repo.ReplaceComplaint(ctx, updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	complaints, _ := repo.Complaints(ctx)
	if complaints[0].Status != domain.ComplaintResolved {
		t.Errorf("status not replaced: %+v", complaints[0])
	}

	missing := domain.Complaint{ID: "missing"}
	if err := repo.ReplaceComplaint(ctx, missing); !errors.Is(err, domain.ErrUnknownComplaint) {
		t.Errorf("expected ErrUnknownComplaint, got %v", err)
	}
}

func TestStoreRepository_UpsertBill(t *testing.T) {
	store := mocks.NewMockRecordStore()
	repo := NewStoreRepository(store)
	ctx := context.Background()

	first := domain.Bill{ID: "b1", StudentID: "s1", Month: "January", MessBill: 2500, RoomDue: 1500, Status: domain.BillUnpaid}
	if err := repo.UpsertBill(ctx, first, []byte(`{"bill_id":"b1"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Re-issuing the same (student, month) replaces in place.
	second := domain.Bill{ID: "b2", StudentID: "s1", Month: "January", MessBill: 3000, RoomDue: 1000, Status: domain.BillUnpaid}
	if err := repo.UpsertBill(ctx, second, []byte(`{"bill_id":"b2"}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A different month appends.
	other := domain.Bill{ID: "b3", StudentID: "s1", Month: "February", MessBill: 2500, RoomDue: 1500, Status: domain.BillUnpaid}
	if err := repo.UpsertBill(ctx, other, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bills, err := repo.Bills(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bills) != 2 {
		t.Fatalf("expected 2 bills, got %d", len(bills))
	}
	if bills[0].ID != "b2" || bills[0].MessBill != 3000 {
		t.Errorf("january bill not replaced: %+v", bills[0])
	}

	// The nil payload upsert rides no event.
	if len(store.Enqueued) != 2 {
		t.Errorf("expected 2 enqueued events, got %d", len(store.Enqueued))
	}
}

func TestStoreRepository_EmptyCollections(t *testing.T) {
	repo := NewStoreRepository(mocks.NewMockRecordStore())
	ctx := context.Background()

	users, err := repo.Users(ctx)
	if err != nil || users != nil {
		t.Errorf("Users on empty store = %v, %v", users, err)
	}
	complaints, err := repo.Complaints(ctx)
	if err != nil || complaints != nil {
		t.Errorf("Complaints on empty store = %v, %v", complaints, err)
	}
	bills, err := repo.Bills(ctx)
	if err != nil || bills != nil {
		t.Errorf("Bills on empty store = %v, %v", bills, err)
	}
}
