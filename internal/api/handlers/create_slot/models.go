package create_slot

import "github.com/m04kA/SMC-ParkingService/internal/service/slots/models"

// CreateSlotRequest HTTP request model
type CreateSlotRequest struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса,
// добавляя actor из контекста аутентификации
func (r *CreateSlotRequest) ToServiceRequest(actor string) *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		Label: r.Label,
		Type:  r.Type,
		Actor: actor,
	}
}
