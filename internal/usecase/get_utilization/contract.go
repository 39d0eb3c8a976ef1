package get_utilization

import (
	"context"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SlotCounter интерфейс репозитория слотов для подсчёта утилизации
type SlotCounter interface {
	Count(ctx context.Context) (int64, error)
	CountByStates(ctx context.Context, states []domain.SlotState) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
