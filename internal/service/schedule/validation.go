package schedule

import (
	"fmt"

	"github.com/agendalivre/booking-service/internal/domain"
)

// validateClosure checks every field of a new closure rule and collects
// all violations instead of stopping at the first one. Returns nil when
// the rule is valid.
func validateClosure(rule *domain.ClosureRule) *ValidationError {
	var violations []FieldViolation

	switch rule.ClosureType {
	case domain.ClosureWeekly:
		if rule.DayOfWeek == nil {
			violations = append(violations, FieldViolation{
				Field:   "dayOfWeek",
				Message: "weekly closure requires dayOfWeek",
			})
		} else if !domain.ValidWeekday(*rule.DayOfWeek) {
			violations = append(violations, FieldViolation{
				Field:   "dayOfWeek",
				Message: fmt.Sprintf("unknown dayOfWeek %q", *rule.DayOfWeek),
			})
		}
		if rule.SpecificDate != nil {
			violations = append(violations, FieldViolation{
				Field:   "specificDate",
				Message: "weekly closure must not set specificDate",
			})
		}

	case domain.ClosureSpecificDate:
		if rule.SpecificDate == nil {
			violations = append(violations, FieldViolation{
				Field:   "specificDate",
				Message: "specific_date closure requires specificDate",
			})
		} else if err := rule.SpecificDate.Validate(); err != nil {
			violations = append(violations, FieldViolation{
				Field:   "specificDate",
				Message: err.Error(),
			})
		}
		if rule.DayOfWeek != nil {
			violations = append(violations, FieldViolation{
				Field:   "dayOfWeek",
				Message: "specific_date closure must not set dayOfWeek",
			})
		}

	default:
		violations = append(violations, FieldViolation{
			Field:   "closureType",
			Message: fmt.Sprintf("unknown closureType %q", rule.ClosureType),
		})
	}

	if rule.Reason != nil && len(*rule.Reason) > domain.MaxReasonLength {
		violations = append(violations, FieldViolation{
			Field:   "reason",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxReasonLength),
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}

// validateBlock checks every field of a new slot block and collects all
// violations. The end-after-start rule is only checked when both times
// parse. Returns nil when the block is valid.
func validateBlock(blk *domain.SlotBlock) *ValidationError {
	var violations []FieldViolation

	if err := blk.SpecificDate.Validate(); err != nil {
		violations = append(violations, FieldViolation{
			Field:   "specificDate",
			Message: err.Error(),
		})
	}

	startErr := blk.StartTime.Validate()
	if startErr != nil {
		violations = append(violations, FieldViolation{
			Field:   "startTime",
			Message: startErr.Error(),
		})
	}
	endErr := blk.EndTime.Validate()
	if endErr != nil {
		violations = append(violations, FieldViolation{
			Field:   "endTime",
			Message: endErr.Error(),
		})
	}

	if startErr == nil && endErr == nil {
		start, _ := blk.StartTime.Minutes()
		end, _ := blk.EndTime.Minutes()
		if end <= start {
			violations = append(violations, FieldViolation{
				Field:   "endTime",
				Message: fmt.Sprintf("must be later than startTime %s", blk.StartTime),
			})
		}
	}

	if blk.Reason != nil && len(*blk.Reason) > domain.MaxReasonLength {
		violations = append(violations, FieldViolation{
			Field:   "reason",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxReasonLength),
		})
	}

	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Violations: violations}
}
