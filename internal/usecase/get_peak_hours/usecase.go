package get_peak_hours

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// UseCase use case анализа пиковых часов: рейтинг часов суток по числу
// переходов слотов в Occupied/Reserved за скользящее окно.
// Чистое чтение, считается по запросу, никогда не кэшируется.
type UseCase struct {
	auditRepo    AuditLogRepository
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(auditRepo AuditLogRepository, windowDays int, logger Logger) *UseCase {
	if windowDays <= 0 {
		windowDays = domain.DefaultPeakHourWindowDays
	}
	return &UseCase{
		auditRepo:    auditRepo,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет анализ пиковых часов.
// Пустое окно не ошибка: возвращается отчёт с hasData=false и нулевой гистограммой.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now()
	cutoff := now.AddDate(0, 0, -uc.windowDays)

	entries, err := uc.auditRepo.ListSince(ctx, domain.AuditWindowFilter{
		Since:     cutoff,
		NewStates: domain.OccupancyStates,
	})
	if err != nil {
		uc.logger.Error("GetPeakHours: failed to fetch audit entries: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch audit entries: %v", ErrInternal, err)
	}

	histogram := buildHourlyHistogram(entries)
	peakHours := rankPeakHours(histogram, topPeakHours)
	totalActivity := len(entries)

	uc.logger.Info("GetPeakHours: %d transitions in last %d days", totalActivity, uc.windowDays)

	return &Response{
		PeakHours:      peakHours,
		TotalActivity:  totalActivity,
		HasData:        totalActivity > 0,
		HourlyActivity: histogram,
		AnalysisPeriod: fmt.Sprintf("%d days", uc.windowDays),
	}, nil
}
