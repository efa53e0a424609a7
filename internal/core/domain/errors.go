package domain

import "errors"

// The stored data model had no failure path: precondition violations were
// silently ignored by the callers that guarded them. Here every rule surfaces
// an explicit sentinel so adapters can map violations to proper responses.
var (
	ErrRoomFull         = errors.New("room has no free bed")
	ErrStoreRoom        = errors.New("room is a store room")
	ErrRoomOccupied     = errors.New("room still has occupants")
	ErrAlreadyAllocated = errors.New("student already occupies a room")
	ErrWrongBuilding    = errors.New("room is not in the student's building")
	ErrNoRoomAllocated  = errors.New("student does not occupy a room")

	ErrUnknownRoom      = errors.New("room not found")
	ErrUnknownStudent   = errors.New("student not found")
	ErrUnknownComplaint = errors.New("complaint not found")
	ErrUnknownBill      = errors.New("bill not found")

	ErrEmailTaken          = errors.New("email already registered for this role")
	ErrInvalidAcademicYear = errors.New("academic year must be between 1 and 4")
	ErrInvalidIssueType    = errors.New("unknown issue type")
	ErrInvalidStatus       = errors.New("unknown status value")
	ErrInvalidMonth        = errors.New("unknown month name")
	ErrNegativeAmount      = errors.New("bill amounts must not be negative")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("no active session")
)
