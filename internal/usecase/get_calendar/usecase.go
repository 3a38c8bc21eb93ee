package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/haeum-studio/booking-service/internal/availability"
	"github.com/haeum-studio/booking-service/internal/domain"
	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
)

// Request asks for the calendar of one month
type Request struct {
	Month time.Time // first day of the month, KST
}

// Response is the per-date availability summary for the month
type Response struct {
	Month time.Time
	Days  []domain.DaySummary
}

// UseCase renders the month calendar: per-date classification, free-slot
// flags and booking counts for the admin badges.
type UseCase struct {
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the calendar usecase
func NewUseCase(bookingRepo BookingRepository, rulesRepo RulesRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rulesRepo:    rulesRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the month view
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	first := time.Date(req.Month.Year(), req.Month.Month(), 1, 0, 0, 0, 0, domain.KST)
	last := first.AddDate(0, 1, -1)

	rules, err := rulesRepo.OrDefaults(uc.rulesRepo.Get(ctx))
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// Cancelled bookings are included: they contribute to the history
	// counters even though they no longer hold slots.
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		StartDate:        &first,
		EndDate:          &last,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	days := availability.BuildCalendar(first, last, rules, bookings, now)

	uc.logger.Info("GetCalendar: built %s with %d days, %d bookings",
		first.Format(domain.MonthFormat), len(days), len(bookings))

	return &Response{Month: first, Days: days}, nil
}
