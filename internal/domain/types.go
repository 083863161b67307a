package domain

import "errors"

// MovementType is the direction of a logged movement.
type MovementType string

const (
	MovementEntry MovementType = "entry"
	MovementExit  MovementType = "exit"
)

// Valid reports whether t is one of the accepted movement types.
func (t MovementType) Valid() bool {
	return t == MovementEntry || t == MovementExit
}

var (
	ErrResidentNotFound    = errors.New("resident not found")
	ErrInvalidMovementType = errors.New("invalid movement type")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)

type Resident struct {
	ID          int64
	Name        string
	Room        string
	MoveInDate  string
	MoveOutDate *string
}

// MovementRecord is an append-only snapshot of a resident crossing the door.
// Name and Room are copied from the resident at logging time so the report
// reflects where they lived then, not where they live now.
type MovementRecord struct {
	ID           int64
	ResidentID   int64
	Name         string
	Room         string
	Date         string
	Time         string
	MovementType MovementType
}
