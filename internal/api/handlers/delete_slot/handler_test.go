package delete_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
)

const testSlotID = "2f0b9c1e-6f3a-4f5e-9b0a-1c2d3e4f5a6b"

type fakeSlotService struct {
	err      error
	lastID   string
	wasCalls int
}

func (f *fakeSlotService) Delete(_ context.Context, id string) error {
	f.wasCalls++
	f.lastID = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeSlotService, slotID string) *httptest.ResponseRecorder {
	t.Helper()

	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/admin/slots/{slotId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/slots/"+slotID, nil)
	req.Header.Set("X-User-ID", "admin@parking.local")
	req.Header.Set("X-User-Role", "admin")
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_DeletesSlot(t *testing.T) {
	svc := &fakeSlotService{}

	rec := doRequest(t, svc, testSlotID)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "слот удалён")
	assert.Equal(t, testSlotID, svc.lastID)
}

func TestHandle_InvalidSlotID(t *testing.T) {
	svc := &fakeSlotService{}

	rec := doRequest(t, svc, "not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, svc.wasCalls)
}

func TestHandle_SlotNotFound(t *testing.T) {
	svc := &fakeSlotService{err: slots.ErrSlotNotFound}

	rec := doRequest(t, svc, testSlotID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeSlotService{err: slots.ErrInternal}

	rec := doRequest(t, svc, testSlotID)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
