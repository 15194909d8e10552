package components

import (
	"boat-reservation/internal/handler"
	"boat-reservation/internal/handler/api"
	"boat-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(reservation *api.ReservationHandler, admin *api.AdminHandler, auth *middleware.AuthMiddleware) handler.Handlers {
	return handler.Handlers{
		Reservation: reservation,
		Admin:       admin,
		Auth:        auth,
	}
}
