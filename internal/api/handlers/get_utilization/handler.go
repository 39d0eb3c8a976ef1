package get_utilization

import (
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

type Handler struct {
	useCase GetUtilizationUseCase
	logger  Logger
}

func NewHandler(useCase GetUtilizationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/utilization
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /analytics/utilization - Failed to compute report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /analytics/utilization - Report computed: utilization=%.2f%%, total=%d",
		result.Utilization, result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, result)
}
