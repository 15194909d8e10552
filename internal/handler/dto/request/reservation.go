package request

import (
	"boat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	TimeSlotID uuid.UUID `json:"timeSlotId" binding:"required"`
}

type ListReservationsQuery struct {
	Cursor    string `form:"cursor"`
	Direction string `form:"direction" binding:"omitempty,oneof=next prev"`
	Limit     int    `form:"limit" binding:"omitempty,gte=0"`
}

func (q ListReservationsQuery) ToListRequest() queries.ListRequest {
	return queries.ListRequest{
		Cursor:    q.Cursor,
		Direction: queries.Direction(q.Direction),
		Limit:     q.Limit,
	}
}
