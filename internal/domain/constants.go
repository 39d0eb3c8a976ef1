package domain

// Default analytics values
const (
	DefaultPeakHourWindowDays = 7
	DefaultSlotLogLimit       = 50
)

// HoursPerDay размер гистограммы активности по часам суток
const HoursPerDay = 24

// ValidStates список допустимых состояний слота
var ValidStates = []SlotState{
	StateFree,
	StateOccupied,
	StateReserved,
}

// ValidTypes список допустимых типов слотов
var ValidTypes = []SlotType{
	TypeTwoWheeler,
	TypeFourWheeler,
}

// OccupancyStates состояния, которые считаются занятостью слота
// Используется расчётом утилизации и анализом пиковых часов
var OccupancyStates = []SlotState{
	StateOccupied,
	StateReserved,
}
