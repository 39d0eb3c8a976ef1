package get_utilization

import (
	"context"

	getUtilization "github.com/m04kA/SMC-ParkingService/internal/usecase/get_utilization"
)

type GetUtilizationUseCase interface {
	Execute(ctx context.Context) (*getUtilization.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
