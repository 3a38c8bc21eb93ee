package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/haeum-studio/booking-service/internal/availability"
	"github.com/haeum-studio/booking-service/internal/domain"
	bookingRepo "github.com/haeum-studio/booking-service/internal/infra/storage/booking"
	rulesRepo "github.com/haeum-studio/booking-service/internal/infra/storage/rules"
)

// UseCase creates a booking for a requested slot.
//
// The availability check and the insert run inside one serializable
// transaction, and the partial unique index on active (date, time) pairs
// backstops the race between a client reading availability and submitting.
type UseCase struct {
	bookingRepo  BookingRepository
	rulesRepo    RulesRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation usecase
func NewUseCase(
	bookingRepo BookingRepository,
	rulesRepo RulesRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		rulesRepo:    rulesRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the requested slot against the current rules and
// bookings, then persists a new pending booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, time=%s, service=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.Service)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rules, err := rulesRepo.OrDefaults(uc.rulesRepo.Get(txCtx))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability rules: %v", err)
			return fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
		}

		if !rules.HasTime(req.StartTime) {
			uc.logger.Warn("CreateBooking: time %s is not an offered slot", req.StartTime)
			return ErrTimeNotOffered
		}

		// Active bookings for the date, locked FOR UPDATE so the
		// classification below stays true until commit.
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, domain.ActiveOnDate(req.Date))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		status := availability.ClassifySlot(req.Date, req.StartTime, rules, bookings, now)
		if err := slotStatusToError(status); err != nil {
			uc.logger.Warn("CreateBooking: slot %s %s not available: %s",
				req.Date.Format(domain.DateFormat), req.StartTime, status)
			return err
		}

		endTime, err := rules.SlotEnd(req.StartTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to derive end time: %v", err)
			return fmt.Errorf("%w: failed to derive end time: %v", ErrInternal, err)
		}

		booking := &domain.Booking{
			ID:          uuid.New(),
			BookingDate: domain.DateOf(req.Date),
			StartTime:   req.StartTime,
			EndTime:     endTime,
			Service:     req.Service,
			Customer:    req.Customer,
			Status:      domain.StatusPending,
			Notes:       req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken at insert time (concurrent request)")
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s for %s %s",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartTime)

	return fromDomain(result), nil
}

// slotStatusToError maps a non-free slot classification to its sentinel
func slotStatusToError(status domain.SlotStatus) error {
	switch status {
	case domain.SlotFree:
		return nil
	case domain.SlotPast:
		return ErrDateInPast
	case domain.SlotBlocked:
		return ErrDateBlocked
	case domain.SlotTooFar:
		return ErrDateTooFar
	case domain.SlotOutsideNotice:
		return ErrOutsideNotice
	case domain.SlotTaken:
		return ErrSlotTaken
	default:
		return fmt.Errorf("%w: unexpected slot status %q", ErrInternal, status)
	}
}
