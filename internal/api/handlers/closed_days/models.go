package closed_days

import (
	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// CreateClosureRequest is the HTTP request model for a new closure rule.
// Exactly one of dayOfWeek/specificDate must be set, matching closureType.
type CreateClosureRequest struct {
	ClosureType  string  `json:"closureType"` // "weekly" | "specific_date"
	DayOfWeek    *string `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

// ClosureResponse is the HTTP model of one closure rule.
type ClosureResponse struct {
	ID           string  `json:"id"`
	ClosureType  string  `json:"closureType"`
	DayOfWeek    *string `json:"dayOfWeek,omitempty"`
	SpecificDate *string `json:"specificDate,omitempty"`
	Reason       *string `json:"reason,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// CheckResponse answers "is this date closed".
type CheckResponse struct {
	Date     string `json:"date"`
	IsClosed bool   `json:"isClosed"`
}

// ToDomain converts the HTTP request to a closure rule. Invariants are
// checked by the service.
func (r *CreateClosureRequest) ToDomain() *domain.ClosureRule {
	rule := &domain.ClosureRule{
		ClosureType: domain.ClosureType(r.ClosureType),
		Reason:      r.Reason,
		IsActive:    true,
	}
	if r.DayOfWeek != nil {
		wd := domain.Weekday(*r.DayOfWeek)
		rule.DayOfWeek = &wd
	}
	if r.SpecificDate != nil {
		d := types.DateString(*r.SpecificDate)
		rule.SpecificDate = &d
	}
	return rule
}

// FromDomain converts one closure rule to the HTTP model.
func FromDomain(rule *domain.ClosureRule) *ClosureResponse {
	resp := &ClosureResponse{
		ID:          rule.ID,
		ClosureType: string(rule.ClosureType),
		Reason:      rule.Reason,
		IsActive:    rule.IsActive,
	}
	if rule.DayOfWeek != nil {
		wd := string(*rule.DayOfWeek)
		resp.DayOfWeek = &wd
	}
	if rule.SpecificDate != nil {
		d := rule.SpecificDate.String()
		resp.SpecificDate = &d
	}
	return resp
}

// FromDomainList converts a list of closure rules, preserving order.
func FromDomainList(rules []*domain.ClosureRule) []*ClosureResponse {
	out := make([]*ClosureResponse, len(rules))
	for i, r := range rules {
		out[i] = FromDomain(r)
	}
	return out
}
