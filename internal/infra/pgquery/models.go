package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRow struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
}

type CruisePeriodRow struct {
	ID      uuid.UUID
	StartAt time.Time
	EndAt   time.Time
}

type TimeSlotRow struct {
	ID             uuid.UUID
	CruisePeriodID uuid.UUID
	Date           pgtype.Date
	StartTime      pgtype.Time
	EndTime        pgtype.Time
}

type BoatRow struct {
	ID           uuid.UUID
	PersonalName string
	IsAvailable  bool
}

type BatteryRow struct {
	ID         uuid.UUID
	BoatID     uuid.UUID
	MentorID   uuid.UUID
	Type       string
	UsageCount int32
}

// ReservationRow carries the reservation together with its slot.
type ReservationRow struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	BoatID                  uuid.UUID
	BatteryID               pgtype.UUID
	PreviousBatteryHolderID pgtype.UUID
	IsDeleted               bool
	CreatedAt               pgtype.Timestamptz
	UpdatedAt               pgtype.Timestamptz
	Slot                    TimeSlotRow
}

// BatteryUsageRow is one past or planned use of a battery.
type BatteryUsageRow struct {
	BatteryID     uuid.UUID
	ReservationID uuid.UUID
	UserID        uuid.UUID
	Slot          TimeSlotRow
}

type ReservationViewRow struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	BoatID                  uuid.UUID
	BoatName                string
	Slot                    TimeSlotRow
	BatteryID               pgtype.UUID
	BatteryType             pgtype.Text
	MentorName              pgtype.Text
	PreviousBatteryHolderID pgtype.UUID
	PreviousHolderName      pgtype.Text
	IsDeleted               bool
	CreatedAt               pgtype.Timestamptz
	UpdatedAt               pgtype.Timestamptz
}

type ReservationListRow struct {
	ID        uuid.UUID
	BoatID    uuid.UUID
	BoatName  string
	Slot      TimeSlotRow
	StartAt   pgtype.Timestamp
	BatteryID pgtype.UUID
	IsDeleted bool
}
