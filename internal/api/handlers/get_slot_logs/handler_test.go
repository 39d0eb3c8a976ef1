package get_slot_logs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

const testSlotID = "2f0b9c1e-6f3a-4f5e-9b0a-1c2d3e4f5a6b"

type fakeSlotService struct {
	err       error
	result    *models.SlotLogListResponse
	lastID    string
	lastLimit uint64
}

func (f *fakeSlotService) GetLogs(_ context.Context, slotID string, limit uint64) (*models.SlotLogListResponse, error) {
	f.lastID = slotID
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeSlotService, slotID string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/admin/slots/{slotId}/logs", NewHandler(svc, 50, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/slots/"+slotID+"/logs", nil)
	req.Header.Set("X-User-ID", "admin@parking.local")
	req.Header.Set("X-User-Role", "admin")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ReturnsLogs(t *testing.T) {
	svc := &fakeSlotService{
		result: &models.SlotLogListResponse{
			Logs: []models.SlotLogResponse{
				{
					ID:            "log-2",
					SlotID:        testSlotID,
					PreviousState: ptr.Ptr("Free"),
					NewState:      "Occupied",
					ChangedBy:     "admin@parking.local",
					Timestamp:     time.Now(),
				},
				{
					ID:        "log-1",
					SlotID:    testSlotID,
					NewState:  "Free",
					ChangedBy: "admin@parking.local",
					Timestamp: time.Now().Add(-time.Hour),
				},
			},
		},
	}

	rec := doRequest(t, svc, testSlotID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"newState":"Occupied"`)
	// Запись о создании слота сериализуется с previousState = null
	assert.Contains(t, rec.Body.String(), `"previousState":null`)
	assert.Equal(t, testSlotID, svc.lastID)
	assert.Equal(t, uint64(50), svc.lastLimit)
}

func TestHandle_EmptyListForUnknownSlot(t *testing.T) {
	svc := &fakeSlotService{result: &models.SlotLogListResponse{Logs: []models.SlotLogResponse{}}}

	rec := doRequest(t, svc, testSlotID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"logs":[]`)
}

func TestHandle_InvalidSlotID(t *testing.T) {
	svc := &fakeSlotService{}

	rec := doRequest(t, svc, "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.lastID)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeSlotService{err: slots.ErrInternal}

	rec := doRequest(t, svc, testSlotID)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
