package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haeum-studio/booking-service/internal/domain"
	bookingRepo "github.com/haeum-studio/booking-service/internal/infra/storage/booking"
	"github.com/haeum-studio/booking-service/internal/service/bookings/models"
	"github.com/haeum-studio/booking-service/pkg/ptr"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockBookingRepo) UpdateNotes(ctx context.Context, id uuid.UUID, notes *string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		BookingDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Service:     "studio",
		Customer: domain.Customer{
			Name:  "Park Minseo",
			Email: "minseo@example.com",
			Phone: "010-9876-5432",
		},
		Status: status,
	}
}

func newTestService(repo *mockBookingRepo) *Service {
	return NewService(repo, passthroughTxManager{}, nopLogger{})
}

func TestUpdate_ConfirmPending(t *testing.T) {
	booking := testBooking(domain.StatusPending)
	confirmed := *booking
	confirmed.Status = domain.StatusConfirmed

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	repo.On("UpdateStatus", mock.Anything, booking.ID, domain.StatusConfirmed).Return(nil)
	repo.On("GetByID", mock.Anything, booking.ID).Return(&confirmed, nil)

	svc := newTestService(repo)
	resp, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	repo.AssertExpectations(t)
}

func TestUpdate_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{"confirmed to pending", domain.StatusConfirmed, "pending", ErrInvalidTransition},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "archived", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := testBooking(tt.from)
			repo := new(mockBookingRepo)
			repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

			svc := newTestService(repo)
			_, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
				Status: ptr.Ptr(tt.to),
			})

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdate_SameStatusIsNoOp(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed)
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	svc := newTestService(repo)
	resp, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_RestoreSucceedsWhenSlotFree(t *testing.T) {
	booking := testBooking(domain.StatusCancelled)
	restored := *booking
	restored.Status = domain.StatusPending

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	// Another active booking on the same date but a different start time
	repo.On("ListWithFilter", mock.Anything, domain.ActiveOnDate(booking.BookingDate)).
		Return([]*domain.Booking{{
			ID:          uuid.New(),
			BookingDate: booking.BookingDate,
			StartTime:   "14:00",
			Status:      domain.StatusConfirmed,
		}}, nil)
	repo.On("UpdateStatus", mock.Anything, booking.ID, domain.StatusPending).Return(nil)
	repo.On("GetByID", mock.Anything, booking.ID).Return(&restored, nil)

	svc := newTestService(repo)
	resp, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Status: ptr.Ptr("pending"),
	})

	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	repo.AssertExpectations(t)
}

func TestUpdate_RestoreFailsWhenSlotRetaken(t *testing.T) {
	booking := testBooking(domain.StatusCancelled)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	// The slot was rebooked after the cancellation
	repo.On("ListWithFilter", mock.Anything, domain.ActiveOnDate(booking.BookingDate)).
		Return([]*domain.Booking{{
			ID:          uuid.New(),
			BookingDate: booking.BookingDate,
			StartTime:   booking.StartTime,
			Status:      domain.StatusPending,
		}}, nil)

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Status: ptr.Ptr("pending"),
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_RestoreLosesRaceOnUniqueIndex(t *testing.T) {
	booking := testBooking(domain.StatusCancelled)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	repo.On("ListWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	repo.On("UpdateStatus", mock.Anything, booking.ID, domain.StatusPending).
		Return(bookingRepo.ErrSlotTaken)

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Status: ptr.Ptr("pending"),
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUpdate_NotesOnly(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed)
	withNotes := *booking
	withNotes.Notes = ptr.Ptr("bring own lighting rig")

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil).Once()
	repo.On("UpdateNotes", mock.Anything, booking.ID, ptr.Ptr("bring own lighting rig")).Return(nil)
	repo.On("GetByID", mock.Anything, booking.ID).Return(&withNotes, nil)

	svc := newTestService(repo)
	resp, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Notes: ptr.Ptr("bring own lighting rig"),
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "bring own lighting rig", *resp.Notes)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_EmptyNotesClears(t *testing.T) {
	booking := testBooking(domain.StatusConfirmed)

	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	repo.On("UpdateNotes", mock.Anything, booking.ID, (*string)(nil)).Return(nil)

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), booking.ID, &models.UpdateBookingRequest{
		Notes: ptr.Ptr(""),
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	svc := newTestService(new(mockBookingRepo))
	_, err := svc.Update(context.Background(), uuid.New(), &models.UpdateBookingRequest{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := newTestService(repo)
	_, err := svc.Update(context.Background(), id, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDelete_OnlyCancelled(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		wantErr error
	}{
		{"cancelled booking deletes", domain.StatusCancelled, nil},
		{"pending booking refuses", domain.StatusPending, ErrCannotDelete},
		{"confirmed booking refuses", domain.StatusConfirmed, ErrCannotDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := testBooking(tt.status)
			repo := new(mockBookingRepo)
			repo.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
			repo.On("Delete", mock.Anything, booking.ID).Return(nil)

			svc := newTestService(repo)
			err := svc.Delete(context.Background(), booking.ID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestList_InvalidDateRange(t *testing.T) {
	start := time.Date(2025, time.April, 1, 0, 0, 0, 0, domain.KST)
	end := time.Date(2025, time.March, 1, 0, 0, 0, 0, domain.KST)

	svc := newTestService(new(mockBookingRepo))
	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		StartDate: &start,
		EndDate:   &end,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
