package review

import (
	"time"

	"field-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotEligible   = errs.New("only players with a past confirmed booking on this field can review it")
	ErrAlreadyExists = errs.New("you have already reviewed this field")
)

// Review is one user's rating of a field. A user holds at most one review per
// field; editing replaces rating and comment in place.
type Review struct {
	id        uuid.UUID
	userID    uuid.UUID
	fieldID   uuid.UUID
	rating    Rating
	comment   Comment
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(userID, fieldID uuid.UUID, rating Rating, comment Comment) *Review {
	return &Review{
		id:      uuid.New(),
		userID:  userID,
		fieldID: fieldID,
		rating:  rating,
		comment: comment,
	}
}

func ReconstructReview(id, userID, fieldID uuid.UUID, rating Rating, comment Comment, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:        id,
		userID:    userID,
		fieldID:   fieldID,
		rating:    rating,
		comment:   comment,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) UserID() uuid.UUID    { return r.userID }
func (r *Review) FieldID() uuid.UUID   { return r.fieldID }
func (r *Review) Rating() Rating       { return r.rating }
func (r *Review) Comment() Comment     { return r.comment }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

// Revise replaces the values given; nil leaves a value unchanged.
func (r *Review) Revise(rating *Rating, comment *Comment) {
	if rating != nil {
		r.rating = *rating
	}
	if comment != nil {
		r.comment = *comment
	}
}
