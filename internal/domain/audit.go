package domain

import "time"

// AuditEntry represents one immutable state transition of one slot.
// PreviousState is nil only for the entry written alongside slot creation.
type AuditEntry struct {
	ID            string
	SlotID        string
	PreviousState *SlotState
	NewState      SlotState
	ChangedBy     string
	Timestamp     time.Time
}

// IsCreationEntry returns true if the entry was produced by slot creation
func (e *AuditEntry) IsCreationEntry() bool {
	return e.PreviousState == nil
}

// AuditWindowFilter фильтр для выборки записей журнала за период
type AuditWindowFilter struct {
	Since     time.Time   // Нижняя граница timestamp (включительно)
	NewStates []SlotState // Фильтр по newState (пустой список = без фильтра)
}
