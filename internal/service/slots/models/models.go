package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

var (
	// ErrInvalidState возвращается при некорректном состоянии слота
	ErrInvalidState = errors.New("invalid slot state")

	// ErrInvalidType возвращается при некорректном типе слота
	ErrInvalidType = errors.New("invalid slot type")

	// ErrEmptyLabel возвращается при пустой метке слота
	ErrEmptyLabel = errors.New("slot label is required")
)

// Request модели

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	Label string `json:"label"`
	Type  string `json:"type"`
	Actor string `json:"-"` // Идентификатор администратора из контекста аутентификации
}

// ToDomainSlot валидирует запрос и строит domain модель нового слота.
// Метка очищается от окружающих пробелов, новый слот всегда свободен.
func (r *CreateSlotRequest) ToDomainSlot() (*domain.Slot, error) {
	label := strings.TrimSpace(r.Label)
	if label == "" {
		return nil, ErrEmptyLabel
	}

	slotType, err := ToDomainSlotType(r.Type)
	if err != nil {
		return nil, err
	}

	return &domain.Slot{
		Label: label,
		Type:  slotType,
		State: domain.StateFree,
	}, nil
}

// UpdateStateRequest запрос на перевод слота в новое состояние
type UpdateStateRequest struct {
	State string `json:"state"`
	Actor string `json:"-"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Type      string    `json:"type"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// SlotLogResponse ответ с записью журнала переходов
type SlotLogResponse struct {
	ID            string    `json:"id"`
	SlotID        string    `json:"slotId"`
	PreviousState *string   `json:"previousState"` // null для записи о создании слота
	NewState      string    `json:"newState"`
	ChangedBy     string    `json:"changedBy"`
	Timestamp     time.Time `json:"timestamp"`
}

// SlotLogListResponse ответ со списком записей журнала
type SlotLogListResponse struct {
	Logs []SlotLogResponse `json:"logs"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:        s.ID,
		Label:     s.Label,
		Type:      string(s.Type),
		State:     string(s.State),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots = append(resp.Slots, *slotResp)
		}
	}

	return resp
}

// FromDomainAuditEntry конвертирует запись журнала в DTO
func FromDomainAuditEntry(e *domain.AuditEntry) *SlotLogResponse {
	if e == nil {
		return nil
	}

	resp := &SlotLogResponse{
		ID:        e.ID,
		SlotID:    e.SlotID,
		NewState:  string(e.NewState),
		ChangedBy: e.ChangedBy,
		Timestamp: e.Timestamp,
	}

	if e.PreviousState != nil {
		prev := string(*e.PreviousState)
		resp.PreviousState = &prev
	}

	return resp
}

// FromDomainAuditEntryList конвертирует список записей журнала в DTO
func FromDomainAuditEntryList(entries []*domain.AuditEntry) *SlotLogListResponse {
	resp := &SlotLogListResponse{
		Logs: make([]SlotLogResponse, 0, len(entries)),
	}

	for _, e := range entries {
		if entryResp := FromDomainAuditEntry(e); entryResp != nil {
			resp.Logs = append(resp.Logs, *entryResp)
		}
	}

	return resp
}

// ToDomainSlotState конвертирует строку в domain.SlotState с валидацией
func ToDomainSlotState(state string) (domain.SlotState, error) {
	s := domain.SlotState(state)
	if !s.IsValid() {
		return "", ErrInvalidState
	}
	return s, nil
}

// ToDomainSlotType конвертирует строку в domain.SlotType с валидацией
func ToDomainSlotType(slotType string) (domain.SlotType, error) {
	t := domain.SlotType(slotType)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
