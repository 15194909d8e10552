package request

import (
	"time"

	"boat-reservation/internal/domain/schedule"
	"boat-reservation/internal/pkg/errs"
	"boat-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type CreateCruisePeriodRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type CreateTimeSlotRequest struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Start string `json:"start" binding:"required,datetime=15:04"`
	End   string `json:"end" binding:"required,datetime=15:04"`
}

func (r CreateTimeSlotRequest) ToCommand(cruisePeriodID uuid.UUID) (commands.AddTimeSlotRequest, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return commands.AddTimeSlotRequest{}, errs.Mark(errs.Wrap(err, "parse date"), errs.ErrInvalidArgument)
	}
	start, err := schedule.ParseTimeOfDay(r.Start)
	if err != nil {
		return commands.AddTimeSlotRequest{}, err
	}
	end, err := schedule.ParseTimeOfDay(r.End)
	if err != nil {
		return commands.AddTimeSlotRequest{}, err
	}
	return commands.AddTimeSlotRequest{
		CruisePeriodID: cruisePeriodID,
		Date:           date,
		Start:          start,
		End:            end,
	}, nil
}
