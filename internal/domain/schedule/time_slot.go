package schedule

import (
	"cmp"
	"time"

	"boat-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	minYear         = 2000
	maxYearsAhead   = 100
	day             = 24 * time.Hour
	timeOfDayLayout = "15:04"
)

var (
	ErrInvalidTimeRange     = errs.Define("time slot end must be after start within the same day", errs.ErrInvalidArgument)
	ErrDateOutOfRange       = errs.Define("time slot date is outside the supported year range", errs.ErrInvalidArgument)
	ErrDateOutsidePeriod    = errs.Define("time slot date must fall within its cruise period", errs.ErrInvalidArgument)
	ErrCruisePeriodRequired = errs.Define("time slot requires a cruise period", errs.ErrInvalidArgument)
	ErrTimeSlotRequired     = errs.Define("time slot is required", errs.ErrInvalidArgument)
)

// TimeSlot is one bookable (date, start, end) window. Start and End are
// offsets from midnight of Date, which is always a midnight UTC value.
type TimeSlot struct {
	id             uuid.UUID
	cruisePeriodID uuid.UUID
	date           time.Time
	start          time.Duration
	end            time.Duration
}

func NewTimeSlot(period *CruisePeriod, date time.Time, start, end time.Duration, now time.Time) (*TimeSlot, error) {
	if period == nil {
		return nil, ErrCruisePeriodRequired
	}
	d := DateOf(date)
	if y := d.Year(); y < minYear || y > now.Year()+maxYearsAhead {
		return nil, ErrDateOutOfRange
	}
	if !period.Contains(d) {
		return nil, ErrDateOutsidePeriod
	}
	if start < 0 || end > day || end <= start {
		return nil, ErrInvalidTimeRange
	}
	return &TimeSlot{
		id:             uuid.New(),
		cruisePeriodID: period.ID(),
		date:           d,
		start:          start,
		end:            end,
	}, nil
}

func ReconstructTimeSlot(id, cruisePeriodID uuid.UUID, date time.Time, start, end time.Duration) *TimeSlot {
	return &TimeSlot{
		id:             id,
		cruisePeriodID: cruisePeriodID,
		date:           DateOf(date),
		start:          start,
		end:            end,
	}
}

func (t TimeSlot) ID() uuid.UUID             { return t.id }
func (t TimeSlot) CruisePeriodID() uuid.UUID { return t.cruisePeriodID }
func (t TimeSlot) Date() time.Time           { return t.date }
func (t TimeSlot) Start() time.Duration      { return t.start }
func (t TimeSlot) End() time.Duration        { return t.end }
func (t TimeSlot) StartAt() time.Time        { return t.date.Add(t.start) }
func (t TimeSlot) EndAt() time.Time          { return t.date.Add(t.end) }
func (t TimeSlot) Duration() time.Duration   { return t.end - t.start }

// Compare orders slots by (Date, Start, End).
func (t TimeSlot) Compare(o TimeSlot) int {
	if c := t.StartAt().Compare(o.StartAt()); c != 0 {
		return c
	}
	return cmp.Compare(t.end, o.end)
}

func (t TimeSlot) SameWindow(o TimeSlot) bool {
	return t.date.Equal(o.date) && t.start == o.start && t.end == o.end
}

// DaysFrom counts whole calendar days from the date of now to the slot date.
// Negative values mean the slot lies in the past.
func (t TimeSlot) DaysFrom(now time.Time) int {
	return int(t.date.Sub(DateOf(now)) / day)
}

func (t TimeSlot) IsPast(now time.Time) bool {
	return t.DaysFrom(now) < 0
}

func (t TimeSlot) StartText() string { return FormatTimeOfDay(t.start) }
func (t TimeSlot) EndText() string   { return FormatTimeOfDay(t.end) }

// DateOf drops the clock part of t, keeping the calendar date as seen in t's
// own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TimeOfDay returns the offset of t from its own midnight.
func TimeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}

func FormatTimeOfDay(d time.Duration) string {
	return time.Time{}.Add(d).Format(timeOfDayLayout)
}

func ParseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "parse time of day"), errs.ErrInvalidArgument)
	}
	return TimeOfDay(t), nil
}
