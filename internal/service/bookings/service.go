package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/haeum-studio/booking-service/internal/domain"
	bookingRepo "github.com/haeum-studio/booking-service/internal/infra/storage/booking"
	"github.com/haeum-studio/booking-service/internal/service/bookings/models"
)

// Service is the operator side of booking management: reads, status
// transitions through the lifecycle table, notes edits and deletion.
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService creates the bookings service
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID fetches one booking
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.fetch(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// List fetches bookings matching the operator filter.
// Cancelled bookings are excluded unless requested explicitly.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update applies a status and/or notes patch to one booking.
//
// Status changes go through the lifecycle table. Restoring a cancelled
// booking re-validates the slot inside a serializable transaction: another
// booking may have taken it since the cancellation. Notes edits are
// orthogonal to status and permitted in any state.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	booking, err := s.fetch(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		newStatus, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status %q for booking id=%s", *req.Status, id)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if err := s.transition(ctx, booking, newStatus); err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		notes := req.Notes
		if *notes == "" {
			notes = nil
		}
		if err := s.bookingRepo.UpdateNotes(ctx, id, notes); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: notes update failed for booking id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: Update - notes update: %v", ErrInternal, err)
		}
	}

	updated, err := s.fetch(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: booking id=%s now status=%s", id, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// Delete removes a booking permanently. Only cancelled bookings may be
// deleted; active history is never silently discarded.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	booking, err := s.fetch(ctx, id, "Delete")
	if err != nil {
		return err
	}

	if !booking.CanBeDeleted() {
		s.logger.Warn("Delete: booking id=%s has status=%s, refusing", id, booking.Status)
		return ErrCannotDelete
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed booking id=%s", id)
	return nil
}

func (s *Service) transition(ctx context.Context, booking *domain.Booking, newStatus domain.BookingStatus) error {
	if booking.Status == newStatus {
		// Idempotent no-op; PUT with the current status is not an error
		return nil
	}

	if err := domain.ValidateTransition(booking.Status, newStatus); err != nil {
		s.logger.Warn("transition: booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if domain.IsRestore(booking.Status, newStatus) {
		return s.restore(ctx, booking)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("transition: booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
	}

	return nil
}

// restore re-activates a cancelled booking. The free-slot check and the
// status write run in one serializable transaction, with the active-slot
// unique index as the final guard against a concurrent take.
func (s *Service) restore(ctx context.Context, booking *domain.Booking) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		active, err := s.bookingRepo.ListWithFilter(txCtx, domain.ActiveOnDate(booking.BookingDate))
		if err != nil {
			return fmt.Errorf("%w: restore - list bookings: %v", ErrInternal, err)
		}

		for _, other := range active {
			if other.ID != booking.ID && other.StartTime == booking.StartTime {
				s.logger.Warn("restore: slot %s %s taken by booking id=%s",
					booking.BookingDate.Format(domain.DateFormat), booking.StartTime, other.ID)
				return ErrSlotUnavailable
			}
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusPending); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotUnavailable
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: restore - update status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("restore: booking id=%s back to pending", booking.ID)
	return nil
}

func (s *Service) fetch(ctx context.Context, id uuid.UUID, method string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", method, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return booking, nil
}
