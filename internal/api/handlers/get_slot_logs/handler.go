package get_slot_logs

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

const msgInvalidSlotID = "некорректный ID слота"

type Handler struct {
	service  SlotService
	logLimit uint64
	logger   Logger
}

func NewHandler(service SlotService, logLimit uint64, logger Logger) *Handler {
	return &Handler{
		service:  service,
		logLimit: logLimit,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/slots/{slotId}/logs
// Для слота без записей (или неизвестного ID) возвращается пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID := vars["slotId"]

	if _, err := uuid.Parse(slotID); err != nil {
		h.logger.Warn("GET /admin/slots/{id}/logs - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	result, err := h.service.GetLogs(r.Context(), slotID, h.logLimit)
	if err != nil {
		h.logger.Error("GET /admin/slots/{id}/logs - Failed to get logs: slot_id=%s, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/slots/{id}/logs - Fetched %d entries: slot_id=%s", len(result.Logs), slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
