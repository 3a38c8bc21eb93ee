package models

import (
	"errors"
	"time"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// ErrInvalidDateRange is returned when the filter's period is inverted
var ErrInvalidDateRange = errors.New("start date must not be after end date")

// Request models

// UpdateBookingRequest patches status and/or notes of one booking.
// Nil fields are left unchanged; an empty notes string clears the notes.
type UpdateBookingRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.Notes == nil
}

// ListBookingsRequest filters the operator booking list
type ListBookingsRequest struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter converts the request into a domain filter
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.StartDate != nil && r.EndDate != nil && r.StartDate.After(*r.EndDate) {
		return filter, ErrInvalidDateRange
	}

	if r.Status != nil {
		status, err := domain.ParseStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// CustomerResponse is the customer contact block
type CustomerResponse struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Company   *string `json:"company,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
}

// BookingResponse is one booking as returned to clients
type BookingResponse struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"` // "2025-03-10"
	Time      string           `json:"time"` // "14:00"
	EndTime   string           `json:"endTime"`
	Service   string           `json:"service"`
	Customer  CustomerResponse `json:"customer"`
	Status    string           `json:"status"`
	Notes     *string          `json:"notes,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// BookingListResponse is a list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts a domain booking into its DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:      b.ID.String(),
		Date:    b.BookingDate.Format(domain.DateFormat),
		Time:    b.StartTime.String(),
		EndTime: b.EndTime.String(),
		Service: b.Service,
		Customer: CustomerResponse{
			Name:      b.Customer.Name,
			Email:     b.Customer.Email,
			Phone:     b.Customer.Phone,
			Company:   b.Customer.Company,
			Instagram: b.Customer.Instagram,
			TikTok:    b.Customer.TikTok,
		},
		Status:    string(b.Status),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList converts a booking slice into the list DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}
