package bootstrap

import (
	"field-booking/internal/domain/booking"
	"field-booking/internal/pkg/config"
	"field-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RulesModule = fx.Module("rules",
	fx.Provide(
		NewBookingRules,
		NewOpeningHours,
	),
)

func NewBookingRules(cfg config.Config) (*booking.Rules, error) {
	loc, err := cfg.Booking.Location()
	if err != nil {
		return nil, err
	}
	return booking.NewRules(cfg.Booking.MaxPerDay, cfg.Booking.MaxAdvanceDays, cfg.Booking.CancelWindow, loc), nil
}

func NewOpeningHours(cfg config.Config) queries.OpeningHours {
	return queries.OpeningHours{Open: cfg.Booking.OpeningHour, Close: cfg.Booking.ClosingHour}
}
