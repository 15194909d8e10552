package components

import (
	"boat-reservation/internal/infra/payment"
	"boat-reservation/internal/pkg/clock"
	"boat-reservation/internal/pkg/config"
	"boat-reservation/internal/usecase"
	"boat-reservation/internal/usecase/assignment"
	"boat-reservation/internal/usecase/commands"
	"boat-reservation/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	usecaseAssignmentModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	payment.NewNoopGateway,
)

// NewClock reports time in APP_TIMEZONE so that "today" is the operator's
// calendar day.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.App.Location()
	if err != nil {
		return nil, err
	}
	return clock.InLocation(clock.NewRealClock(), loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewBoatCommands,
		commands.NewScheduleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseAssignmentModule = fx.Module("usecase/assignment",
	fx.Provide(
		NewAssignmentOptions,
		fx.Annotate(
			assignment.NewService,
			fx.As(new(assignment.Runner)),
		),
	),
)

func NewAssignmentOptions(cfg config.Config) assignment.Options {
	return assignment.Options{
		LockTTL:             cfg.Assignment.LockTTL,
		HistoryLookbackDays: cfg.Assignment.HistoryLookbackDays,
	}
}
