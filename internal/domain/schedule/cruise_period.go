package schedule

import (
	"slices"
	"time"

	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPeriod     = errs.Define("cruise period end must be after start", errs.ErrInvalidArgument)
	ErrForeignTimeSlot   = errs.Define("time slot belongs to another cruise period", errs.ErrInvalidArgument)
	ErrDuplicateTimeSlot = errs.Define("time slot already exists in this cruise period", errs.ErrConflict)
)

type CruisePeriod struct {
	id        uuid.UUID
	start     time.Time
	end       time.Time
	timeSlots []*TimeSlot
}

func NewCruisePeriod(start, end time.Time) (*CruisePeriod, error) {
	if !end.After(start) {
		return nil, ErrInvalidPeriod
	}
	return &CruisePeriod{id: uuid.New(), start: start, end: end}, nil
}

func ReconstructCruisePeriod(id uuid.UUID, start, end time.Time, slots []*TimeSlot) *CruisePeriod {
	p := &CruisePeriod{id: id, start: start, end: end, timeSlots: slices.Clone(slots)}
	slices.SortFunc(p.timeSlots, func(a, b *TimeSlot) int { return a.Compare(*b) })
	return p
}

func (p *CruisePeriod) ID() uuid.UUID    { return p.id }
func (p *CruisePeriod) Start() time.Time { return p.start }
func (p *CruisePeriod) End() time.Time   { return p.end }

func (p *CruisePeriod) TimeSlots() []*TimeSlot {
	return slices.Clone(p.timeSlots)
}

// Contains reports whether the calendar date lies in [Start, End). The
// period start is taken at day granularity so a period opening mid-day
// still includes that day.
func (p *CruisePeriod) Contains(date time.Time) bool {
	d := DateOf(date)
	return !d.Before(DateOf(p.start)) && d.Before(p.end)
}

// AddTimeSlot keeps the slots ordered and rejects a second slot with the
// same date, start and end.
func (p *CruisePeriod) AddTimeSlot(slot *TimeSlot) error {
	if slot == nil {
		return ErrTimeSlotRequired
	}
	if slot.CruisePeriodID() != p.id {
		return ErrForeignTimeSlot
	}
	i, found := slices.BinarySearchFunc(p.timeSlots, slot, func(a, b *TimeSlot) int { return a.Compare(*b) })
	if found {
		return ErrDuplicateTimeSlot
	}
	p.timeSlots = slices.Insert(p.timeSlots, i, slot)
	return nil
}
