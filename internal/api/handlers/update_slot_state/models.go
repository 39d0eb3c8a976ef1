package update_slot_state

import "github.com/m04kA/SMC-ParkingService/internal/service/slots/models"

// UpdateStateRequest HTTP request model
type UpdateStateRequest struct {
	State string `json:"state"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса,
// добавляя actor из контекста аутентификации
func (r *UpdateStateRequest) ToServiceRequest(actor string) *models.UpdateStateRequest {
	return &models.UpdateStateRequest{
		State: r.State,
		Actor: actor,
	}
}
