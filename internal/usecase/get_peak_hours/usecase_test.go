package get_peak_hours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type fakeAuditRepo struct {
	entries    []*domain.AuditEntry
	err        error
	lastFilter domain.AuditWindowFilter
}

func (f *fakeAuditRepo) ListSince(_ context.Context, filter domain.AuditWindowFilter) ([]*domain.AuditEntry, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_RanksTopThreeHours(t *testing.T) {
	repo := &fakeAuditRepo{entries: entriesAtHours(9, 9, 9, 14, 14, 20)}
	uc := NewUseCase(repo, 7, nopLogger{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, result.PeakHours, 3)
	assert.Equal(t, PeakHour{Hour: 9, Time: "9:00 AM", Activity: 3}, result.PeakHours[0])
	assert.Equal(t, PeakHour{Hour: 14, Time: "2:00 PM", Activity: 2}, result.PeakHours[1])
	assert.Equal(t, PeakHour{Hour: 20, Time: "8:00 PM", Activity: 1}, result.PeakHours[2])

	assert.Equal(t, 6, result.TotalActivity)
	assert.True(t, result.HasData)
	assert.Equal(t, "7 days", result.AnalysisPeriod)
	assert.Len(t, result.HourlyActivity, 24)
	assert.Equal(t, 3, result.HourlyActivity[9])
}

func TestExecute_EmptyWindowReturnsZeroedReport(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewUseCase(repo, 7, nopLogger{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.False(t, result.HasData)
	assert.Equal(t, 0, result.TotalActivity)
	assert.Len(t, result.HourlyActivity, 24)
	for hour, activity := range result.HourlyActivity {
		assert.Zero(t, activity, "hour %d", hour)
	}
	// Рейтинг всегда содержит 3 записи, даже при пустом окне
	require.Len(t, result.PeakHours, 3)
	assert.Zero(t, result.PeakHours[0].Activity)
}

func TestExecute_FilterUsesWindowAndOccupancyStates(t *testing.T) {
	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeAuditRepo{}
	uc := NewUseCase(repo, 7, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	_, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, -7), repo.lastFilter.Since)
	assert.Equal(t, domain.OccupancyStates, repo.lastFilter.NewStates)
}

func TestNewUseCase_DefaultsWindowDays(t *testing.T) {
	repo := &fakeAuditRepo{}
	uc := NewUseCase(repo, 0, nopLogger{})

	assert.Equal(t, domain.DefaultPeakHourWindowDays, uc.windowDays)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeAuditRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, 7, nopLogger{})

	result, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)
}
