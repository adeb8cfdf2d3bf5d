package book_appointment

import (
	"regexp"
	"strings"

	"github.com/agendalivre/booking-service/internal/domain"
)

var phonePattern = regexp.MustCompile(domain.ClientPhonePattern)

// validateRequest checks every field and reports all violations at once,
// so a client fixing a form sees the full list in one round trip.
func validateRequest(req *Request) error {
	var violations []FieldViolation

	name := strings.TrimSpace(req.ClientName)
	if len([]rune(name)) < domain.MinClientNameLength {
		violations = append(violations, FieldViolation{
			Field:   "clientName",
			Message: "must be at least 2 characters",
		})
	}

	if !phonePattern.MatchString(req.ClientPhone) {
		violations = append(violations, FieldViolation{
			Field:   "clientPhone",
			Message: "must match the format (XX) XXXXX-XXXX",
		})
	}

	if err := req.Date.Validate(); err != nil {
		violations = append(violations, FieldViolation{
			Field:   "date",
			Message: "must be a valid date in YYYY-MM-DD format",
		})
	}

	if err := req.Time.Validate(); err != nil {
		violations = append(violations, FieldViolation{
			Field:   "time",
			Message: "must be a valid time in HH:MM format",
		})
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
