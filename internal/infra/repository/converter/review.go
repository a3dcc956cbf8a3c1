package converter

import (
	"fmt"

	"field-booking/internal/domain/review"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:      r.ID(),
		UserID:  r.UserID(),
		FieldID: r.FieldID(),
		Rating:  int32(r.Rating().Value()), // #nosec G115 -- 1..5
		Comment: r.Comment().String(),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:      r.ID(),
		Rating:  int32(r.Rating().Value()), // #nosec G115 -- 1..5
		Comment: r.Comment().String(),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, fmt.Errorf("stored review %s: %w", row.ID, err)
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, fmt.Errorf("stored review %s: %w", row.ID, err)
	}

	return review.ReconstructReview(
		row.ID,
		row.UserID,
		row.FieldID,
		rating,
		comment,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
