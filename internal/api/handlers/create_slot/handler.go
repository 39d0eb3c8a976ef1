package create_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlot        = "требуются корректные метка и тип слота"
	msgDuplicateLabel     = "метка слота уже существует"
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

// Handle POST /api/v1/admin/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	actor, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	created, err := h.service.Create(r.Context(), req.ToServiceRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /admin/slots - Validation failed: label=%q type=%q", req.Label, req.Type)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, slots.ErrDuplicateLabel):
			h.logger.Warn("POST /admin/slots - Duplicate label: label=%q", req.Label)
			handlers.RespondBadRequest(w, msgDuplicateLabel)

		default:
			h.logger.Error("POST /admin/slots - Failed to create slot: label=%q, error=%v", req.Label, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/slots - Slot created: slot_id=%s, label=%q, actor=%s",
		created.ID, created.Label, actor)
	handlers.RespondJSON(w, http.StatusCreated, created)
}
