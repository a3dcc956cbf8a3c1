package request

import (
	"time"

	"field-booking/internal/domain/booking"
	"field-booking/internal/usecase/commands"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID  uuid.UUID `json:"field" binding:"required"`
	Date     string    `json:"date" binding:"required"`
	TimeSlot string    `json:"timeSlot" binding:"required"`
	// admin only
	UserID *uuid.UUID `json:"user"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		FieldID:  r.FieldID,
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
		UserID:   r.UserID,
	}
}

type UpdateBookingRequest struct {
	Date     *string `json:"date"`
	TimeSlot *string `json:"timeSlot"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

func (r *UpdateBookingRequest) ToCommand() commands.UpdateBookingRequest {
	return commands.UpdateBookingRequest{
		Date:     r.Date,
		TimeSlot: r.TimeSlot,
		Status:   r.Status,
	}
}

type ListBookingsQuery struct {
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	FieldID string `form:"field" binding:"omitempty,uuid"`
	From    string `form:"from"`
	To      string `form:"to"`
}

func (q *ListBookingsQuery) ToFilter() (queries.BookingFilter, error) {
	var filter queries.BookingFilter
	if q.Status != "" {
		status := q.Status
		filter.Status = &status
	}
	if q.FieldID != "" {
		id, err := uuid.Parse(q.FieldID)
		if err != nil {
			return filter, err
		}
		filter.FieldID = &id
	}
	var err error
	if filter.From, err = optionalDate(q.From); err != nil {
		return filter, err
	}
	if filter.To, err = optionalDate(q.To); err != nil {
		return filter, err
	}
	return filter, nil
}

func optionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := booking.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
