package get_utilization

// Response отчёт об утилизации парковки на момент запроса
type Response struct {
	Utilization   float64 `json:"utilization"` // Процент занятых слотов, 2 знака
	TotalSlots    int64   `json:"totalSlots"`
	OccupiedSlots int64   `json:"occupiedSlots"`
	FreeSlots     int64   `json:"freeSlots"`
	Message       *string `json:"message,omitempty"` // Заполнен только когда слоты не настроены
}
