package update_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haeum-studio/booking-service/internal/service/bookings"
	"github.com/haeum-studio/booking-service/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doRequest(t *testing.T, svc BookingService, bookingID, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/admin/bookings/{bookingId}", handler.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/admin/bookings/"+bookingID, strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHandle_UpdatesBooking(t *testing.T) {
	id := uuid.New()

	svc := new(mockService)
	svc.On("Update", mock.Anything, id, mock.MatchedBy(func(req *models.UpdateBookingRequest) bool {
		return req.Status != nil && *req.Status == "confirmed"
	})).Return(&models.BookingResponse{ID: id.String(), Status: "confirmed"}, nil)

	rec, env := doRequest(t, svc, id.String(), `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"invalid transition", bookings.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"slot unavailable", bookings.ErrSlotUnavailable, http.StatusConflict},
		{"invalid input", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			svc.On("Update", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, tt.serviceErr)

			rec, env := doRequest(t, svc, uuid.NewString(), `{"status":"pending"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestHandle_InvalidBookingID(t *testing.T) {
	rec, env := doRequest(t, new(mockService), "not-a-uuid", `{"status":"confirmed"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec, env := doRequest(t, new(mockService), uuid.NewString(), `{"status":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
}

func TestHandle_UnknownField(t *testing.T) {
	rec, _ := doRequest(t, new(mockService), uuid.NewString(), `{"slot":"10:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
