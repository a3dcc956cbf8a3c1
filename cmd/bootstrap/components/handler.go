package components

import (
	"field-booking/internal/handler"
	"field-booking/internal/handler/api"
	"field-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewFieldHandler,
		api.NewReviewHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(auth *api.AuthHandler, booking *api.BookingHandler, field *api.FieldHandler, review *api.ReviewHandler, user *api.UserHandler) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		Booking: booking,
		Field:   field,
		Review:  review,
		User:    user,
	}
}
