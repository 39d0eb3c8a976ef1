package domain

import "time"

// SlotState represents the occupancy state of a parking slot
type SlotState string

const (
	StateFree     SlotState = "Free"
	StateOccupied SlotState = "Occupied"
	StateReserved SlotState = "Reserved"
)

// SlotType represents the vehicle class a parking slot is built for
type SlotType string

const (
	TypeTwoWheeler  SlotType = "Two-wheeler"
	TypeFourWheeler SlotType = "Four-wheeler"
)

// Slot represents a single physical parking space
type Slot struct {
	ID        string
	Label     string
	Type      SlotType
	State     SlotState
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOccupying returns true if the slot state counts towards utilization
func (s *Slot) IsOccupying() bool {
	return s.State == StateOccupied || s.State == StateReserved
}

// IsFree returns true if the slot is free
func (s *Slot) IsFree() bool {
	return s.State == StateFree
}

// IsValid returns true if the state is one of the known variants
func (s SlotState) IsValid() bool {
	switch s {
	case StateFree, StateOccupied, StateReserved:
		return true
	}
	return false
}

// IsValid returns true if the type is one of the known variants
func (t SlotType) IsValid() bool {
	switch t {
	case TypeTwoWheeler, TypeFourWheeler:
		return true
	}
	return false
}
