package slots

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotRepository интерфейс репозитория парковочных слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	List(ctx context.Context) ([]*domain.Slot, error)
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	UpdateState(ctx context.Context, id string, state domain.SlotState) (*domain.Slot, error)
	Delete(ctx context.Context, id string) error
}

// AuditLogRepository интерфейс репозитория журнала переходов
type AuditLogRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) (*domain.AuditEntry, error)
	ListBySlot(ctx context.Context, slotID string, limit uint64) ([]*domain.AuditEntry, error)
	DeleteBySlot(ctx context.Context, slotID string) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
