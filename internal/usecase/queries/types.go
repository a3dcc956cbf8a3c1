package queries

import (
	"time"

	"github.com/google/uuid"
)

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type FieldSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	SportType    string    `json:"sport_type"`
	PricePerHour float64   `json:"price_per_hour"`
}

// BookingView is a booking joined with its user and field.
type BookingView struct {
	ID        uuid.UUID    `json:"id"`
	Date      time.Time    `json:"date"`
	TimeSlot  string       `json:"time_slot"`
	Status    string       `json:"status"`
	User      UserSummary  `json:"user"`
	Field     FieldSummary `json:"field"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BookingFilter narrows a booking listing; nil fields match everything.
type BookingFilter struct {
	UserID     *uuid.UUID
	Status     *string
	FieldID    *uuid.UUID
	From       *time.Time
	To         *time.Time
	Descending bool
}

type FieldView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	SportType     string    `json:"sport_type"`
	PricePerHour  float64   `json:"price_per_hour"`
	Active        bool      `json:"active"`
	ReviewCount   int       `json:"review_count"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SlotAvailability struct {
	TimeSlot  string `json:"time_slot"`
	Available bool   `json:"available"`
}

type FieldAvailability struct {
	FieldID uuid.UUID          `json:"field_id"`
	Date    time.Time          `json:"date"`
	Slots   []SlotAvailability `json:"slots"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReviewAuthor struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReviewView struct {
	ID        uuid.UUID    `json:"id"`
	FieldID   uuid.UUID    `json:"field_id"`
	Author    ReviewAuthor `json:"author"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// ReviewPage is one page of a field's reviews, newest first. NextCursor is
// empty on the last page.
type ReviewPage struct {
	Reviews    []*ReviewView `json:"reviews"`
	NextCursor string        `json:"next_cursor,omitempty"`
}
