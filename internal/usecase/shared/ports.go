package shared

import (
	"context"
	"time"

	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

type Notification struct {
	UserID   uuid.UUID
	Title    string
	Message  string
	Severity Severity
}

// BatteryAssignmentNotice describes one reservation that just received a
// battery, with enough context to tell the booker where to pick it up.
type BatteryAssignmentNotice struct {
	ReservationID      uuid.UUID
	UserID             uuid.UUID
	BoatName           string
	Date               time.Time
	Start              string
	End                string
	BatteryID          uuid.UUID
	BatteryType        string
	MentorID           uuid.UUID
	MentorName         string
	PreviousHolderID   *uuid.UUID
	PreviousHolderName string
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
	NotifyBatteryAssignments(ctx context.Context, notices []BatteryAssignmentNotice) error
}

var ErrLockHeld = errs.Define("lock is held by another worker", errs.ErrConflict)

// Locker provides mutual exclusion per key. Acquire returns ErrLockHeld
// without blocking when the key is taken.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}

type PaymentGateway interface {
	Confirm(ctx context.Context, reservationID uuid.UUID) error
}
