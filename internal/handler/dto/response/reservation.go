package response

import (
	"time"

	"boat-reservation/internal/usecase/commands"
	"boat-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateReservationResponse struct {
	ID     uuid.UUID `json:"id"`
	BoatID uuid.UUID `json:"boatId"`
}

type ReservationResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"userId"`
	BoatID             uuid.UUID  `json:"boatId"`
	BoatName           string     `json:"boatName"`
	TimeSlotID         uuid.UUID  `json:"timeSlotId"`
	Date               string     `json:"date"`
	Start              string     `json:"start"`
	End                string     `json:"end"`
	BatteryID          *uuid.UUID `json:"batteryId,omitempty"`
	BatteryType        *string    `json:"batteryType,omitempty"`
	MentorName         *string    `json:"mentorName,omitempty"`
	PreviousHolderID   *uuid.UUID `json:"previousHolderId,omitempty"`
	PreviousHolderName *string    `json:"previousHolderName,omitempty"`
	IsCanceled         bool       `json:"isCanceled"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type ReservationListItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	BoatID     uuid.UUID  `json:"boatId"`
	BoatName   string     `json:"boatName"`
	Date       string     `json:"date"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	BatteryID  *uuid.UUID `json:"batteryId,omitempty"`
	IsCanceled bool       `json:"isCanceled"`
}

type ReservationPageResponse struct {
	Data           []*ReservationListItemResponse `json:"data"`
	NextCursor     *string                        `json:"nextCursor"`
	PreviousCursor *string                        `json:"previousCursor"`
	IsFirstPage    bool                           `json:"isFirstPage"`
}

func FromCreateReservationResult(r *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{ID: r.ReservationID, BoatID: r.BoatID}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		UserID:             v.UserID,
		BoatID:             v.BoatID,
		BoatName:           v.BoatName,
		TimeSlotID:         v.TimeSlotID,
		Date:               v.Date.Format(dateLayout),
		Start:              v.Start,
		End:                v.End,
		BatteryID:          v.BatteryID,
		BatteryType:        v.BatteryType,
		MentorName:         v.MentorName,
		PreviousHolderID:   v.PreviousHolderID,
		PreviousHolderName: v.PreviousHolderName,
		IsCanceled:         v.IsDeleted,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromReservationPage(p *queries.Page[*queries.ReservationListItem]) *ReservationPageResponse {
	data := make([]*ReservationListItemResponse, len(p.Data))
	for i, item := range p.Data {
		data[i] = &ReservationListItemResponse{
			ID:         item.ID,
			BoatID:     item.BoatID,
			BoatName:   item.BoatName,
			Date:       item.Date.Format(dateLayout),
			Start:      item.Start,
			End:        item.End,
			BatteryID:  item.BatteryID,
			IsCanceled: item.IsDeleted,
		}
	}
	return &ReservationPageResponse{
		Data:           data,
		NextCursor:     p.NextCursor,
		PreviousCursor: p.PreviousCursor,
		IsFirstPage:    p.IsFirstPage,
	}
}
