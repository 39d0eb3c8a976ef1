package get_peak_hours

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	useCase GetPeakHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetPeakHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/peak-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /analytics/peak-hours - Failed to compute report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /analytics/peak-hours - Report computed: totalActivity=%d, hasData=%t",
		result.TotalActivity, result.HasData)
	handlers.RespondJSON(w, http.StatusOK, result)
}
