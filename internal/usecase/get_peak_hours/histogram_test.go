package get_peak_hours

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestFormatHour(t *testing.T) {
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "12:00 AM"},
		{1, "1:00 AM"},
		{9, "9:00 AM"},
		{11, "11:00 AM"},
		{12, "12:00 PM"},
		{13, "1:00 PM"},
		{14, "2:00 PM"},
		{20, "8:00 PM"},
		{23, "11:00 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, formatHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestBuildHourlyHistogram(t *testing.T) {
	entries := entriesAtHours(9, 9, 14, 23, 0)

	histogram := buildHourlyHistogram(entries)

	assert.Len(t, histogram, 24)
	assert.Equal(t, 2, histogram[9])
	assert.Equal(t, 1, histogram[14])
	assert.Equal(t, 1, histogram[23])
	assert.Equal(t, 1, histogram[0])
	assert.Equal(t, 0, histogram[12])
}

func TestRankPeakHours_TieKeepsAscendingHourOrder(t *testing.T) {
	histogram := make([]int, domain.HoursPerDay)
	histogram[17] = 2
	histogram[3] = 2

	ranked := rankPeakHours(histogram, topPeakHours)

	assert.Len(t, ranked, 3)
	assert.Equal(t, 3, ranked[0].Hour)
	assert.Equal(t, 17, ranked[1].Hour)
}

// entriesAtHours строит записи журнала с timestamp в указанные часы суток
func entriesAtHours(hours ...int) []*domain.AuditEntry {
	entries := make([]*domain.AuditEntry, 0, len(hours))
	for _, h := range hours {
		entries = append(entries, &domain.AuditEntry{
			SlotID:    "slot-1",
			NewState:  domain.StateOccupied,
			ChangedBy: "admin@parking.local",
			Timestamp: time.Date(2025, 10, 14, h, 30, 0, 0, time.Local),
		})
	}
	return entries
}
