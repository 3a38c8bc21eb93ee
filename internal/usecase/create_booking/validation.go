package create_booking

import (
	"fmt"
	"strings"

	"github.com/haeum-studio/booking-service/internal/domain"
)

// validateRequest checks the request shape before any storage access.
// Slot-level validity (offered time, free slot, notice window) is decided
// inside the transaction against current data.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Service) == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service must be at most %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}

	if err := validateCustomer(&req.Customer); err != nil {
		return err
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

func validateCustomer(c *domain.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(c.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}
	if len(c.Email) > domain.MaxEmailLength || !looksLikeEmail(c.Email) {
		return fmt.Errorf("%w: customer email is malformed", ErrInvalidInput)
	}

	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if len(c.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customer phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if c.Company != nil && len(*c.Company) > domain.MaxCompanyLength {
		return fmt.Errorf("%w: company must be at most %d characters", ErrInvalidInput, domain.MaxCompanyLength)
	}
	if c.Instagram != nil && len(*c.Instagram) > domain.MaxHandleLength {
		return fmt.Errorf("%w: instagram handle must be at most %d characters", ErrInvalidInput, domain.MaxHandleLength)
	}
	if c.TikTok != nil && len(*c.TikTok) > domain.MaxHandleLength {
		return fmt.Errorf("%w: tiktok handle must be at most %d characters", ErrInvalidInput, domain.MaxHandleLength)
	}

	return nil
}

// looksLikeEmail is a shape check, not RFC validation: one "@" with
// something on both sides and a dot in the domain part.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domainPart := s[at+1:]
	if strings.Contains(domainPart, "@") {
		return false
	}
	dot := strings.Index(domainPart, ".")
	return dot > 0 && dot < len(domainPart)-1
}
