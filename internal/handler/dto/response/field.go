package response

import (
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type FieldResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	SportType     string    `json:"sportType"`
	PricePerHour  float64   `json:"pricePerHour"`
	Active        bool      `json:"active"`
	ReviewCount   int       `json:"reviewCount"`
	AverageRating float64   `json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromFieldView(v *queries.FieldView) *FieldResponse {
	var res FieldResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromFieldViews(vs []*queries.FieldView) []*FieldResponse {
	res := make([]*FieldResponse, len(vs))
	for i, v := range vs {
		res[i] = FromFieldView(v)
	}
	return res
}

type SlotResponse struct {
	TimeSlot  string `json:"timeSlot"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	FieldID uuid.UUID      `json:"fieldId"`
	Date    string         `json:"date"`
	Slots   []SlotResponse `json:"slots"`
}

func FromFieldAvailability(a *queries.FieldAvailability) *AvailabilityResponse {
	slots := make([]SlotResponse, len(a.Slots))
	for i, slot := range a.Slots {
		slots[i] = SlotResponse(slot)
	}
	return &AvailabilityResponse{
		FieldID: a.FieldID,
		Date:    booking.FormatDate(a.Date),
		Slots:   slots,
	}
}
