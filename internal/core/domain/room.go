package domain

import "fmt"

type RoomStatus string

const (
	RoomAvailable RoomStatus = "AVAILABLE"
	RoomOccupied  RoomStatus = "OCCUPIED"
	RoomStoreRoom RoomStatus = "STORE_ROOM"
)

// MaxOccupants is the bed capacity of every bookable room.
const MaxOccupants = 2

// Every storeRoomInterval-th room (1-indexed) in a building starts out as a
// store room and is excluded from booking and bed-capacity counts.
const storeRoomInterval = 15

// Room is the allocation unit. OccupiedBy holds student ids in booking order:
// the first booker occupies bed 1. Status is OCCUPIED iff both beds are taken,
// otherwise AVAILABLE unless the manager has forced it to STORE_ROOM.
type Room struct {
	ID         string     `json:"id"`
	BuildingID string     `json:"building_id"`
	RoomNumber string     `json:"room_number"`
	Status     RoomStatus `json:"status"`
	OccupiedBy []string   `json:"occupied_by,omitempty"`
}

// HasBed reports whether at least one bed is free.
func (r Room) HasBed() bool {
	return len(r.OccupiedBy) < MaxOccupants
}

// Bookable reports whether a student may book a bed in this room.
func (r Room) Bookable() bool {
	return r.Status != RoomStoreRoom && r.HasBed()
}

// Allocate appends the student to the room's occupants and derives the
// resulting status. It returns ErrStoreRoom for store rooms and ErrRoomFull
// when both beds are taken. The input room is not modified.
func Allocate(room Room, studentID string) (Room, error) {
	if room.Status == RoomStoreRoom {
		return Room{}, ErrStoreRoom
	}
	if !room.HasBed() {
		return Room{}, ErrRoomFull
	}
	occupants := append(append([]string(nil), room.OccupiedBy...), studentID)
	room.OccupiedBy = occupants
	if len(occupants) == MaxOccupants {
		room.Status = RoomOccupied
	} else {
		room.Status = RoomAvailable
	}
	return room, nil
}

// SetStatus overwrites the room status. Marking a room with remaining
// occupants as STORE_ROOM is rejected so that bookings are never silently
// orphaned.
func SetStatus(room Room, status RoomStatus) (Room, error) {
	if status == RoomStoreRoom && len(room.OccupiedBy) > 0 {
		return Room{}, ErrRoomOccupied
	}
	room.Status = status
	return room, nil
}

// RoomOf returns the room currently occupied by the student, if any. A
// student holds at most one room at a time.
func RoomOf(rooms []Room, studentID string) (Room, bool) {
	for _, r := range rooms {
		for _, id := range r.OccupiedBy {
			if id == studentID {
				return r, true
			}
		}
	}
	return Room{}, false
}

// RoomByID returns the room with the given id.
func RoomByID(rooms []Room, id string) (Room, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// GenerateInitialRooms produces the full deterministic room set for all
// buildings. Room ids are {buildingId}-{sequence}; room numbers are the
// building initial followed by the zero-padded sequence.
func GenerateInitialRooms() []Room {
	var rooms []Room
	for _, b := range Buildings {
		for i := 1; i <= b.TotalRooms; i++ {
			status := RoomAvailable
			if i%storeRoomInterval == 0 {
				status = RoomStoreRoom
			}
			rooms = append(rooms, Room{
				ID:         fmt.Sprintf("%s-%d", b.ID, i),
				BuildingID: b.ID,
				RoomNumber: fmt.Sprintf("%s%03d", b.Name[:1], i),
				Status:     status,
			})
		}
	}
	return rooms
}
