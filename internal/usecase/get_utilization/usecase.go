package get_utilization

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

const msgNoSlotsConfigured = "No parking slots configured"

// UseCase use case расчёта текущей утилизации парковки.
// Чистое чтение: ничего не кэширует и не персистит, считается по запросу.
type UseCase struct {
	slotRepo SlotCounter
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotCounter, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute считает долю слотов в состояниях Occupied/Reserved.
// Отсутствие слотов не ошибка: возвращается корректный отчёт с нулевой утилизацией.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	totalSlots, err := uc.slotRepo.Count(ctx)
	if err != nil {
		uc.logger.Error("GetUtilization: failed to count slots: %v", err)
		return nil, fmt.Errorf("%w: failed to count slots: %v", ErrInternal, err)
	}

	if totalSlots == 0 {
		uc.logger.Info("GetUtilization: no slots configured")
		return &Response{
			Utilization:   0,
			TotalSlots:    0,
			OccupiedSlots: 0,
			FreeSlots:     0,
			Message:       ptr.Ptr(msgNoSlotsConfigured),
		}, nil
	}

	occupiedSlots, err := uc.slotRepo.CountByStates(ctx, domain.OccupancyStates)
	if err != nil {
		uc.logger.Error("GetUtilization: failed to count occupied slots: %v", err)
		return nil, fmt.Errorf("%w: failed to count occupied slots: %v", ErrInternal, err)
	}

	utilization := roundToTwoDecimals(float64(occupiedSlots) / float64(totalSlots) * 100)

	uc.logger.Info("GetUtilization: %d/%d slots occupied, utilization=%.2f%%",
		occupiedSlots, totalSlots, utilization)

	return &Response{
		Utilization:   utilization,
		TotalSlots:    totalSlots,
		OccupiedSlots: occupiedSlots,
		FreeSlots:     totalSlots - occupiedSlots,
	}, nil
}

// roundToTwoDecimals округляет до 2 знаков (half-up)
func roundToTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
