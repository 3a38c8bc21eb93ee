package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/haeum-studio/booking-service/internal/domain"
	bookingRepo "github.com/haeum-studio/booking-service/internal/infra/storage/booking"
	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
	"github.com/haeum-studio/booking-service/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockRulesRepo struct {
	mock.Mock
}

func (m *mockRulesRepo) Get(ctx context.Context) (*domain.AvailabilityRules, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityRules), args.Error(1)
}

// passthroughTxManager runs the function directly; transactional behaviour
// itself is the database's job and is not under test here.
type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRules() *domain.AvailabilityRules {
	return &domain.AvailabilityRules{
		AvailableTimes:  []types.TimeString{"09:00", "10:00"},
		BlockedWeekdays: []time.Weekday{time.Sunday},
		MinAdvanceHours: 24,
		MaxAdvanceDays:  60,
		SlotDuration:    60,
	}
}

func newTestUseCase(bookings *mockBookingRepo, rules *mockRulesRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, rules, passthroughTxManager{}, nopLogger{})
	uc.timeProvider = fixedClock{now: now}
	return uc
}

func validRequest(date time.Time, start types.TimeString) *Request {
	return &Request{
		Date:      date,
		StartTime: start,
		Service:   "model",
		Customer: domain.Customer{
			Name:  "Kim Jiwoo",
			Email: "jiwoo@example.com",
			Phone: "010-1234-5678",
		},
	}
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	// Monday
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	bookings := new(mockBookingRepo)
	rules := new(mockRulesRepo)

	rules.On("Get", mock.Anything).Return(testRules(), nil)
	bookings.On("ListWithFilter", mock.Anything, domain.ActiveOnDate(date)).
		Return([]*domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.StatusPending &&
			b.StartTime == types.TimeString("09:00") &&
			b.EndTime == types.TimeString("10:00") &&
			domain.SameDay(b.BookingDate, date)
	})).Return(&domain.Booking{
		BookingDate: date,
		StartTime:   "09:00",
		EndTime:     "10:00",
		Service:     "model",
		Status:      domain.StatusPending,
	}, nil)

	uc := newTestUseCase(bookings, rules, now)
	resp, err := uc.Execute(context.Background(), validRequest(date, "09:00"))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.EndTime, "end time derived from slot duration")
	bookings.AssertExpectations(t)
}

func TestExecute_MissingRulesRowUsesDefaults(t *testing.T) {
	// Monday
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	bookings := new(mockBookingRepo)
	rules := new(mockRulesRepo)

	rules.On("Get", mock.Anything).Return(nil, rulesRepo.ErrRulesNotFound)
	bookings.On("ListWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.EndTime == types.TimeString("11:00")
	})).Return(&domain.Booking{
		BookingDate: date,
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      domain.StatusPending,
	}, nil)

	uc := newTestUseCase(bookings, rules, now)
	resp, err := uc.Execute(context.Background(), validRequest(date, "10:00"))

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status, "default rules apply when no row is stored")
}

func TestExecute_SlotClassificationFailures(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)

	tests := []struct {
		name    string
		date    time.Time
		start   types.TimeString
		wantErr error
	}{
		{
			name:    "past date",
			date:    time.Date(2025, time.March, 2, 0, 0, 0, 0, domain.KST),
			start:   "09:00",
			wantErr: ErrDateInPast,
		},
		{
			name:    "blocked weekday",
			date:    time.Date(2025, time.March, 9, 0, 0, 0, 0, domain.KST), // Sunday
			start:   "09:00",
			wantErr: ErrDateBlocked,
		},
		{
			name:    "beyond horizon",
			date:    time.Date(2025, time.June, 1, 0, 0, 0, 0, domain.KST),
			start:   "09:00",
			wantErr: ErrDateTooFar,
		},
		{
			name:    "inside notice window",
			date:    time.Date(2025, time.March, 3, 0, 0, 0, 0, domain.KST),
			start:   "09:00", // starts 1h from now, notice requires 24h
			wantErr: ErrOutsideNotice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := new(mockBookingRepo)
			rules := new(mockRulesRepo)
			rules.On("Get", mock.Anything).Return(testRules(), nil)
			bookings.On("ListWithFilter", mock.Anything, mock.Anything).
				Return([]*domain.Booking{}, nil)

			uc := newTestUseCase(bookings, rules, now)
			_, err := uc.Execute(context.Background(), validRequest(tt.date, tt.start))

			assert.ErrorIs(t, err, tt.wantErr)
			bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_TimeNotOffered(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	bookings := new(mockBookingRepo)
	rules := new(mockRulesRepo)
	rules.On("Get", mock.Anything).Return(testRules(), nil)

	uc := newTestUseCase(bookings, rules, now)
	_, err := uc.Execute(context.Background(), validRequest(date, "13:30"))

	assert.ErrorIs(t, err, ErrTimeNotOffered)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	bookings := new(mockBookingRepo)
	rules := new(mockRulesRepo)
	rules.On("Get", mock.Anything).Return(testRules(), nil)
	bookings.On("ListWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{{
			BookingDate: date,
			StartTime:   "09:00",
			Status:      domain.StatusConfirmed,
		}}, nil)

	uc := newTestUseCase(bookings, rules, now)
	_, err := uc.Execute(context.Background(), validRequest(date, "09:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	bookings := new(mockBookingRepo)
	rules := new(mockRulesRepo)
	rules.On("Get", mock.Anything).Return(testRules(), nil)
	bookings.On("ListWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{{
			BookingDate: date,
			StartTime:   "09:00",
			Status:      domain.StatusCancelled,
		}}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Booking{BookingDate: date, StartTime: "09:00", Status: domain.StatusPending}, nil)

	uc := newTestUseCase(bookings, rules, now)
	_, err := uc.Execute(context.Background(), validRequest(date, "09:00"))

	require.NoError(t, err)
}

func TestExecute_ConcurrentInsertLosesRace(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	bookings := new(mockBookingRepo)
	rules := new(mockRulesRepo)
	rules.On("Get", mock.Anything).Return(testRules(), nil)
	bookings.On("ListWithFilter", mock.Anything, mock.Anything).
		Return([]*domain.Booking{}, nil)
	// The unique index rejects the insert even though the read saw a free slot
	bookings.On("Create", mock.Anything, mock.Anything).
		Return(nil, bookingRepo.ErrSlotTaken)

	uc := newTestUseCase(bookings, rules, now)
	_, err := uc.Execute(context.Background(), validRequest(date, "09:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_ValidationFailures(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, domain.KST)
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, domain.KST)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing name", func(r *Request) { r.Customer.Name = "" }},
		{"missing email", func(r *Request) { r.Customer.Email = "" }},
		{"malformed email", func(r *Request) { r.Customer.Email = "not-an-email" }},
		{"missing phone", func(r *Request) { r.Customer.Phone = "" }},
		{"missing service", func(r *Request) { r.Service = "  " }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing time", func(r *Request) { r.StartTime = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(date, "09:00")
			tt.mutate(req)

			uc := newTestUseCase(new(mockBookingRepo), new(mockRulesRepo), now)
			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
