package domain

import "time"

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "PENDING"
	ComplaintInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintResolved   ComplaintStatus = "RESOLVED"
)

type IssueType string

const (
	IssueFan    IssueType = "Fan Problem"
	IssueLight  IssueType = "Light Problem"
	IssueWindow IssueType = "Window Issue"
	IssueDoor   IssueType = "Door Issue"
	IssueOther  IssueType = "Other"
)

var IssueTypes = []IssueType{IssueFan, IssueLight, IssueWindow, IssueDoor, IssueOther}

// Complaint is a maintenance ticket. RoomID and BuildingID are copied from the
// student's occupied room at creation time and never re-derived afterwards.
type Complaint struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"student_id"`
	RoomID      string          `json:"room_id"`
	BuildingID  string          `json:"building_id"`
	IssueType   IssueType       `json:"issue_type"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ValidIssueType reports whether t is one of the closed set of issue types.
func ValidIssueType(t IssueType) bool {
	for _, it := range IssueTypes {
		if it == t {
			return true
		}
	}
	return false
}

// ValidComplaintStatus reports whether s is a known lifecycle state. Any
// known state may be set from any other: RESOLVED is not terminal and a
// resolved ticket can be reopened.
func ValidComplaintStatus(s ComplaintStatus) bool {
	switch s {
	case ComplaintPending, ComplaintInProgress, ComplaintResolved:
		return true
	}
	return false
}

// ComplaintByID returns the complaint with the given id.
func ComplaintByID(complaints []Complaint, id string) (Complaint, bool) {
	for _, c := range complaints {
		if c.ID == id {
			return c, true
		}
	}
	return Complaint{}, false
}
