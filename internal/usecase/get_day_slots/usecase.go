package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/haeum-studio/booking-service/internal/availability"
	"github.com/haeum-studio/booking-service/internal/domain"
	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
)

// Request asks for the slot list of one date
type Request struct {
	Date time.Time // calendar date in KST
}

// Response carries the date classification and every slot's state
type Response struct {
	Date       time.Time
	DateStatus domain.DateStatus
	Slots      []domain.SlotView
}

// UseCase renders the per-slot availability for one date, the view a
// client uses to pick a start time.
type UseCase struct {
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the day slots usecase
func NewUseCase(bookingRepo BookingRepository, rulesRepo RulesRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rulesRepo:    rulesRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the day view
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	rules, err := rulesRepo.OrDefaults(uc.rulesRepo.Get(ctx))
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.ActiveOnDate(req.Date))
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	day := domain.DateOf(req.Date)
	resp := &Response{
		Date:       day,
		DateStatus: availability.ClassifyDate(day, rules, now),
		Slots:      availability.BuildDaySchedule(day, rules, bookings, now),
	}

	uc.logger.Info("GetDaySlots: %s classified %s with %d slots",
		day.Format(domain.DateFormat), resp.DateStatus, len(resp.Slots))

	return resp, nil
}
