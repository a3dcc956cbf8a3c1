package response

import (
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type BookingFieldResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	SportType    string    `json:"sportType"`
	PricePerHour float64   `json:"pricePerHour"`
}

type BookingResponse struct {
	ID        uuid.UUID            `json:"id"`
	Date      string               `json:"date"`
	TimeSlot  string               `json:"timeSlot"`
	Status    string               `json:"status"`
	User      BookingUserResponse  `json:"user"`
	Field     BookingFieldResponse `json:"field"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:       v.ID,
		Date:     booking.FormatDate(v.Date),
		TimeSlot: v.TimeSlot,
		Status:   v.Status,
		User: BookingUserResponse{
			ID:    v.User.ID,
			Name:  v.User.Name,
			Email: v.User.Email,
		},
		Field: BookingFieldResponse{
			ID:           v.Field.ID,
			Name:         v.Field.Name,
			Location:     v.Field.Location,
			SportType:    v.Field.SportType,
			PricePerHour: v.Field.PricePerHour,
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}
