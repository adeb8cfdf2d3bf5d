package reschedule_appointment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agendalivre/booking-service/internal/domain"
)

var phonePattern = regexp.MustCompile(domain.ClientPhonePattern)

// validateRequest checks the set fields of the patch. Unset fields are
// not validated: they keep their stored value untouched.
func validateRequest(req *Request) error {
	if req.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if patch := req.patch(); patch.IsEmpty() {
		return ErrEmptyPatch
	}

	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if len([]rune(name)) < domain.MinClientNameLength {
			return fmt.Errorf("%w: clientName must be at least 2 characters", ErrInvalidInput)
		}
	}

	if req.ClientPhone != nil && !phonePattern.MatchString(*req.ClientPhone) {
		return fmt.Errorf("%w: clientPhone must match the format (XX) XXXXX-XXXX", ErrInvalidInput)
	}

	if req.Date != nil {
		if err := req.Date.Validate(); err != nil {
			return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
		}
	}

	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
		}
	}

	// Cancellation goes through the cancel operation, never a patch.
	if req.Status != nil {
		switch *req.Status {
		case domain.StatusConfirmed, domain.StatusRescheduled:
		default:
			return fmt.Errorf("%w: status must be confirmed or rescheduled", ErrInvalidInput)
		}
	}

	return nil
}
