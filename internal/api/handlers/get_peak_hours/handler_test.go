package get_peak_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	getPeakHours "github.com/m04kA/SMC-ParkingService/internal/usecase/get_peak_hours"
)

type fakeUseCase struct {
	result *getPeakHours.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context) (*getPeakHours.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/peak-hours", nil)
	rec := httptest.NewRecorder()

	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_ReturnsReport(t *testing.T) {
	histogram := make([]int, 24)
	histogram[9] = 3
	histogram[14] = 2

	uc := &fakeUseCase{
		result: &getPeakHours.Response{
			PeakHours: []getPeakHours.PeakHour{
				{Hour: 9, Time: "9:00 AM", Activity: 3},
				{Hour: 14, Time: "2:00 PM", Activity: 2},
				{Hour: 0, Time: "12:00 AM", Activity: 0},
			},
			TotalActivity:  5,
			HasData:        true,
			HourlyActivity: histogram,
			AnalysisPeriod: "7 days",
		},
	}

	rec := doRequest(t, uc)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"time":"9:00 AM"`)
	assert.Contains(t, rec.Body.String(), `"totalActivity":5`)
	assert.Contains(t, rec.Body.String(), `"hasData":true`)
	assert.Contains(t, rec.Body.String(), `"analysisPeriod":"7 days"`)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: getPeakHours.ErrInternal}

	rec := doRequest(t, uc)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
