package get_utilization

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

type fakeSlotCounter struct {
	total      int64
	occupied   int64
	countErr   error
	byStateErr error
	lastStates []domain.SlotState
}

func (f *fakeSlotCounter) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.total, nil
}

func (f *fakeSlotCounter) CountByStates(_ context.Context, states []domain.SlotState) (int64, error) {
	f.lastStates = states
	if f.byStateErr != nil {
		return 0, f.byStateErr
	}
	return f.occupied, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_NoSlotsConfigured(t *testing.T) {
	uc := NewUseCase(&fakeSlotCounter{total: 0}, nopLogger{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Utilization)
	assert.Zero(t, result.TotalSlots)
	assert.Zero(t, result.OccupiedSlots)
	assert.Zero(t, result.FreeSlots)
	require.NotNil(t, result.Message)
	assert.Equal(t, "No parking slots configured", *result.Message)
}

func TestExecute_ComputesUtilization(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		occupied int64
		expected float64
	}{
		{"three of eight", 8, 3, 37.5},
		{"one third rounds down", 3, 1, 33.33},
		{"two thirds rounds up", 3, 2, 66.67},
		{"full lot", 4, 4, 100},
		{"empty lot", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeSlotCounter{total: tt.total, occupied: tt.occupied}
			uc := NewUseCase(repo, nopLogger{})

			result, err := uc.Execute(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.expected, result.Utilization)
			assert.Equal(t, tt.total, result.TotalSlots)
			assert.Equal(t, tt.occupied, result.OccupiedSlots)
			assert.Equal(t, tt.total-tt.occupied, result.FreeSlots)
			assert.Nil(t, result.Message)
			assert.Equal(t, domain.OccupancyStates, repo.lastStates)
		})
	}
}

func TestExecute_CountError(t *testing.T) {
	uc := NewUseCase(&fakeSlotCounter{countErr: errors.New("connection refused")}, nopLogger{})

	result, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CountByStatesError(t *testing.T) {
	uc := NewUseCase(&fakeSlotCounter{total: 5, byStateErr: errors.New("connection refused")}, nopLogger{})

	result, err := uc.Execute(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInternal)
}
