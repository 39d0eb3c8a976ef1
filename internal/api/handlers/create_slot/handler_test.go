package create_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots"
	"github.com/m04kA/SMC-ParkingService/internal/service/slots/models"
)

type fakeSlotService struct {
	err     error
	created *models.SlotResponse
	lastReq *models.CreateSlotRequest
}

func (f *fakeSlotService) Create(_ context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeSlotService, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := middleware.Auth(http.HandlerFunc(NewHandler(svc, nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/slots", strings.NewReader(body))
	req.Header.Set("X-User-ID", "admin@parking.local")
	req.Header.Set("X-User-Role", "admin")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandle_CreatesSlot(t *testing.T) {
	svc := &fakeSlotService{
		created: &models.SlotResponse{
			ID:        "2f0b9c1e-6f3a-4f5e-9b0a-1c2d3e4f5a6b",
			Label:     "A-12",
			Type:      "Four-wheeler",
			State:     "Free",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	rec := doRequest(t, svc, `{"label": "A-12", "type": "Four-wheeler"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"label":"A-12"`)
	assert.Contains(t, rec.Body.String(), `"state":"Free"`)

	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "admin@parking.local", svc.lastReq.Actor)
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &fakeSlotService{}

	rec := doRequest(t, svc, `{"label": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq, "service must not be called on malformed body")
}

func TestHandle_UnknownFieldRejected(t *testing.T) {
	svc := &fakeSlotService{}

	rec := doRequest(t, svc, `{"label": "A-12", "type": "Four-wheeler", "state": "Occupied"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.lastReq)
}

func TestHandle_ValidationError(t *testing.T) {
	svc := &fakeSlotService{err: slots.ErrInvalidInput}

	rec := doRequest(t, svc, `{"label": "", "type": "Truck"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_DuplicateLabel(t *testing.T) {
	svc := &fakeSlotService{err: slots.ErrDuplicateLabel}

	rec := doRequest(t, svc, `{"label": "A-12", "type": "Four-wheeler"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "метка слота уже существует")
}

func TestHandle_InternalError(t *testing.T) {
	svc := &fakeSlotService{err: slots.ErrInternal}

	rec := doRequest(t, svc, `{"label": "A-12", "type": "Four-wheeler"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "repository", "internal details must not leak")
}
