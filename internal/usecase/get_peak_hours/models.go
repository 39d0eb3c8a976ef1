package get_peak_hours

// PeakHour один час суток в рейтинге активности
type PeakHour struct {
	Hour     int    `json:"hour"`     // 0-23
	Time     string `json:"time"`     // 12-часовая метка, например "2:00 PM"
	Activity int    `json:"activity"` // Количество переходов в Occupied/Reserved
}

// Response отчёт о пиковых часах за окно анализа
type Response struct {
	PeakHours      []PeakHour `json:"peakHours"`      // Топ-3 часа по активности
	TotalActivity  int        `json:"totalActivity"`  // Всего переходов в окне
	HasData        bool       `json:"hasData"`        // false, если окно пустое
	HourlyActivity []int      `json:"hourlyActivity"` // Все 24 корзины гистограммы
	AnalysisPeriod string     `json:"analysisPeriod"` // Например "7 days"
}
