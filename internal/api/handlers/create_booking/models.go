package create_booking

import (
	"fmt"
	"time"

	"github.com/haeum-studio/booking-service/internal/domain"
	createBooking "github.com/haeum-studio/booking-service/internal/usecase/create_booking"
	"github.com/haeum-studio/booking-service/pkg/types"
)

// CustomerPayload is the contact block of the booking form
type CustomerPayload struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Company   *string `json:"company,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	TikTok    *string `json:"tiktok,omitempty"`
}

// CreateBookingRequest is the wire shape of the public booking form
type CreateBookingRequest struct {
	Date     string          `json:"date"` // "2025-03-10"
	Time     string          `json:"time"` // "14:00"
	Service  string          `json:"service"`
	Customer CustomerPayload `json:"customer"`
	Notes    *string         `json:"notes,omitempty"`
}

// ToUseCaseRequest parses the wire strings into the usecase model
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, domain.KST)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", r.Date, err)
	}

	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, fmt.Errorf("parse time %q: %w", r.Time, err)
	}

	return &createBooking.Request{
		Date:      date,
		StartTime: startTime,
		Service:   r.Service,
		Customer: domain.Customer{
			Name:      r.Customer.Name,
			Email:     r.Customer.Email,
			Phone:     r.Customer.Phone,
			Company:   r.Customer.Company,
			Instagram: r.Customer.Instagram,
			TikTok:    r.Customer.TikTok,
		},
		Notes: r.Notes,
	}, nil
}

// CreateBookingResponse is the created booking on the wire
type CreateBookingResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Time      string          `json:"time"`
	EndTime   string          `json:"endTime"`
	Service   string          `json:"service"`
	Customer  CustomerPayload `json:"customer"`
	Status    string          `json:"status"`
	Notes     *string         `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// FromUseCaseResponse converts the usecase result into the wire shape
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:      resp.ID.String(),
		Date:    resp.Date.Format(domain.DateFormat),
		Time:    resp.StartTime.String(),
		EndTime: resp.EndTime.String(),
		Service: resp.Service,
		Customer: CustomerPayload{
			Name:      resp.Customer.Name,
			Email:     resp.Customer.Email,
			Phone:     resp.Customer.Phone,
			Company:   resp.Customer.Company,
			Instagram: resp.Customer.Instagram,
			TikTok:    resp.Customer.TikTok,
		},
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt,
	}
}
