//go:build unit || e2e

package builder

import (
	"time"

	"field-booking/internal/domain/review"
	reqdto "field-booking/internal/handler/dto/request"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	UserID   uuid.UUID
	UserName string
	FieldID  uuid.UUID
	Rating   int
	Comment  string
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		UserID:   uuid.New(),
		UserName: "Test User",
		FieldID:  uuid.New(),
		Rating:   4,
		Comment:  "Good surface, lights were fine.",
	}
}

func (b *ReviewBuilder) BuildDomain() (*review.Review, error) {
	rating, err := review.NewRating(b.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(b.Comment)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return review.ReconstructReview(uuid.New(), b.UserID, b.FieldID, rating, comment, now, now), nil
}

func (b *ReviewBuilder) BuildInfra() sqlc.Reviews {
	now := time.Now()
	return sqlc.Reviews{
		ID:        uuid.New(),
		UserID:    b.UserID,
		FieldID:   b.FieldID,
		Rating:    int32(b.Rating), // #nosec G115 -- test data
		Comment:   b.Comment,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (b *ReviewBuilder) BuildViewInfra() sqlc.ReviewViews {
	now := time.Now()
	return sqlc.ReviewViews{
		ID:        uuid.New(),
		FieldID:   b.FieldID,
		Rating:    int32(b.Rating), // #nosec G115 -- test data
		Comment:   b.Comment,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UserID:    b.UserID,
		UserName:  b.UserName,
	}
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	now := time.Now()
	return &queries.ReviewView{
		ID:      uuid.New(),
		FieldID: b.FieldID,
		Author: queries.ReviewAuthor{
			ID:   b.UserID,
			Name: b.UserName,
		},
		Rating:    b.Rating,
		Comment:   b.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		Rating:  b.Rating,
		Comment: b.Comment,
	}
}

func (b *ReviewBuilder) WithUserID(id uuid.UUID) *ReviewBuilder {
	b.UserID = id
	return b
}

func (b *ReviewBuilder) WithFieldID(id uuid.UUID) *ReviewBuilder {
	b.FieldID = id
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}
