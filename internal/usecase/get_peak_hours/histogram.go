package get_peak_hours

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// topPeakHours количество часов в итоговом рейтинге
const topPeakHours = 3

// buildHourlyHistogram строит 24-корзинную гистограмму активности по часу
// суток (локальный календарный час timestamp-а записи)
func buildHourlyHistogram(entries []*domain.AuditEntry) []int {
	histogram := make([]int, domain.HoursPerDay)
	for _, entry := range entries {
		histogram[entry.Timestamp.Local().Hour()]++
	}
	return histogram
}

// rankPeakHours ранжирует часы по убыванию активности и возвращает топ-N.
// Стабильная сортировка над входом, упорядоченным по часам: при равной
// активности меньший час идёт раньше. Это зафиксированная политика
// tie-break, а не случайность порядка итерации.
func rankPeakHours(histogram []int, limit int) []PeakHour {
	ranked := make([]PeakHour, len(histogram))
	for hour, count := range histogram {
		ranked[hour] = PeakHour{
			Hour:     hour,
			Time:     formatHour(hour),
			Activity: count,
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Activity > ranked[j].Activity
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// formatHour форматирует час суток в 12-часовую метку: 0 -> "12:00 AM",
// 12 -> "12:00 PM", 14 -> "2:00 PM"
func formatHour(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	displayHour := hour
	switch {
	case hour == 0:
		displayHour = 12
	case hour > 12:
		displayHour = hour - 12
	}

	return fmt.Sprintf("%d:00 %s", displayHour, period)
}
