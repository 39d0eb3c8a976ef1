package get_peak_hours

import (
	"context"

	getPeakHours "github.com/m04kA/SMC-ParkingService/internal/usecase/get_peak_hours"
)

type GetPeakHoursUseCase interface {
	Execute(ctx context.Context) (*getPeakHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
