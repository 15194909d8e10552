package queries

import (
	"time"

	"github.com/google/uuid"
)

type ReservationView struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	BoatID             uuid.UUID  `json:"boat_id"`
	BoatName           string     `json:"boat_name"`
	TimeSlotID         uuid.UUID  `json:"time_slot_id"`
	Date               time.Time  `json:"date"`
	Start              string     `json:"start"`
	End                string     `json:"end"`
	BatteryID          *uuid.UUID `json:"battery_id,omitempty"`
	BatteryType        *string    `json:"battery_type,omitempty"`
	MentorName         *string    `json:"mentor_name,omitempty"`
	PreviousHolderID   *uuid.UUID `json:"previous_holder_id,omitempty"`
	PreviousHolderName *string    `json:"previous_holder_name,omitempty"`
	IsDeleted          bool       `json:"is_deleted"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID        uuid.UUID  `json:"id"`
	BoatID    uuid.UUID  `json:"boat_id"`
	BoatName  string     `json:"boat_name"`
	Date      time.Time  `json:"date"`
	Start     string     `json:"start"`
	End       string     `json:"end"`
	StartAt   time.Time  `json:"start_at"`
	BatteryID *uuid.UUID `json:"battery_id,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
}

// Page is one window of a keyset-paginated listing. Cursors are opaque.
type Page[T any] struct {
	Data           []T
	NextCursor     *string
	PreviousCursor *string
	IsFirstPage    bool
}
