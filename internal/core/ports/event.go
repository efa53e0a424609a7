package ports

import (
	"context"
	"encoding/json"
)

const (
	EventRoomBooked     = "room.booked"
	EventComplaintFiled = "complaint.filed"
	EventBillIssued     = "bill.issued"
)

type RoomBookedEvent struct {
	StudentID  string `json:"student_id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	BuildingID string `json:"building_id"`
	Occupants  int    `json:"occupants"`
}

type ComplaintFiledEvent struct {
	ComplaintID string `json:"complaint_id"`
	StudentID   string `json:"student_id"`
	RoomID      string `json:"room_id"`
	IssueType   string `json:"issue_type"`
}

type BillIssuedEvent struct {
	BillID    string `json:"bill_id"`
	StudentID string `json:"student_id"`
	Month     string `json:"month"`
	Total     int    `json:"total"`
}

// HostelEvent is an outbox row on its way to the message queue.
type HostelEvent struct {
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
}

type HostelEventPublisher interface {
	PublishHostelEvent(ctx context.Context, evt HostelEvent) error
}
