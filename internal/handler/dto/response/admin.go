package response

import (
	"time"

	"boat-reservation/internal/usecase/assignment"
	"boat-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type BoatAvailabilityResponse struct {
	BoatID      uuid.UUID `json:"boatId"`
	IsAvailable bool      `json:"isAvailable"`
	Canceled    int       `json:"canceled"`
}

type AssignmentRunResponse struct {
	StartedAt  time.Time `json:"startedAt"`
	Boats      int       `json:"boats"`
	Assigned   int       `json:"assigned"`
	Notified   int       `json:"notified"`
	DurationMs int64     `json:"durationMs"`
}

func FromSetAvailabilityResult(r *commands.SetAvailabilityResult) *BoatAvailabilityResponse {
	return &BoatAvailabilityResponse{BoatID: r.BoatID, IsAvailable: r.IsAvailable, Canceled: r.Canceled}
}

func FromAssignmentResult(r *assignment.Result) *AssignmentRunResponse {
	return &AssignmentRunResponse{
		StartedAt:  r.StartedAt,
		Boats:      r.Boats,
		Assigned:   r.Assigned,
		Notified:   r.Notified,
		DurationMs: r.Duration.Milliseconds(),
	}
}
