package update_slot_state

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidState       = "требуется корректное состояние слота"
	msgNotFound           = "слот не найден"
	msgMissingUserID      = "отсутствует идентификатор пользователя"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID := vars["slotId"]

	if _, err := uuid.Parse(slotID); err != nil {
		h.logger.Warn("PUT /admin/slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateStateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/slots/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	updated, err := h.service.SetState(r.Context(), slotID, req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PUT /admin/slots/{id} - Invalid state: slot_id=%s, state=%q", slotID, req.State)
			handlers.RespondBadRequest(w, msgInvalidState)

		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /admin/slots/{id} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /admin/slots/{id} - Failed to update state: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/slots/{id} - State updated: slot_id=%s, state=%s, actor=%s",
		updated.ID, updated.State, actor)
	handlers.RespondJSON(w, http.StatusOK, updated)
}
