package slot_blocks

import (
	"github.com/agendalivre/booking-service/internal/domain"
	"github.com/agendalivre/booking-service/pkg/types"
)

// CreateBlockRequest is the HTTP request model for a new slot block.
// When endTime is omitted the default block duration is applied.
type CreateBlockRequest struct {
	SpecificDate string  `json:"specificDate"` // "2025-06-10"
	StartTime    string  `json:"startTime"`    // "09:00"
	EndTime      *string `json:"endTime,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

// BlockResponse is the HTTP model of one slot block.
type BlockResponse struct {
	ID           string  `json:"id"`
	SpecificDate string  `json:"specificDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Reason       *string `json:"reason,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// CheckResponse answers "is this time blocked on this date".
type CheckResponse struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	IsBlocked bool   `json:"isBlocked"`
}

// ToDomain converts the HTTP request to a slot block. Range invariants
// are checked by the service.
func (r *CreateBlockRequest) ToDomain() *domain.SlotBlock {
	blk := &domain.SlotBlock{
		SpecificDate: types.DateString(r.SpecificDate),
		StartTime:    types.TimeString(r.StartTime),
		Reason:       r.Reason,
		IsActive:     true,
	}
	if r.EndTime != nil {
		blk.EndTime = types.TimeString(*r.EndTime)
	}
	return blk
}

// FromDomain converts one slot block to the HTTP model.
func FromDomain(blk *domain.SlotBlock) *BlockResponse {
	return &BlockResponse{
		ID:           blk.ID,
		SpecificDate: blk.SpecificDate.String(),
		StartTime:    blk.StartTime.String(),
		EndTime:      blk.EndTime.String(),
		Reason:       blk.Reason,
		IsActive:     blk.IsActive,
	}
}

// FromDomainList converts a list of slot blocks, preserving order.
func FromDomainList(blocks []*domain.SlotBlock) []*BlockResponse {
	out := make([]*BlockResponse, len(blocks))
	for i, b := range blocks {
		out[i] = FromDomain(b)
	}
	return out
}
