package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotState_IsValid(t *testing.T) {
	for _, state := range ValidStates {
		assert.True(t, state.IsValid(), "state %q", state)
	}

	assert.False(t, SlotState("").IsValid())
	assert.False(t, SlotState("free").IsValid(), "states are case-sensitive")
	assert.False(t, SlotState("Parked").IsValid())
}

func TestSlotType_IsValid(t *testing.T) {
	for _, slotType := range ValidTypes {
		assert.True(t, slotType.IsValid(), "type %q", slotType)
	}

	assert.False(t, SlotType("").IsValid())
	assert.False(t, SlotType("Truck").IsValid())
	assert.False(t, SlotType("two-wheeler").IsValid(), "types are case-sensitive")
}

func TestSlot_IsOccupying(t *testing.T) {
	assert.False(t, (&Slot{State: StateFree}).IsOccupying())
	assert.True(t, (&Slot{State: StateOccupied}).IsOccupying())
	assert.True(t, (&Slot{State: StateReserved}).IsOccupying())
}

func TestSlot_IsFree(t *testing.T) {
	assert.True(t, (&Slot{State: StateFree}).IsFree())
	assert.False(t, (&Slot{State: StateReserved}).IsFree())
}

func TestAuditEntry_IsCreationEntry(t *testing.T) {
	creation := &AuditEntry{NewState: StateFree}
	assert.True(t, creation.IsCreationEntry())

	prev := StateFree
	transition := &AuditEntry{PreviousState: &prev, NewState: StateOccupied}
	assert.False(t, transition.IsCreationEntry())
}
