package repository

import (
	"context"

	"field-booking/internal/domain/review"
	"field-booking/internal/infra"
	"field-booking/internal/infra/repository/converter"
	sqlc "field-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	GetReviewForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (sqlc.Reviews, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	LockFieldRatings(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RecalcFieldRatingStats(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID) error
	ListReviewedFieldIDsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]uuid.UUID, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyPgErr("failed to find review by ID", err)
	}
	rv, err := converter.ReviewFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load review", err)
	}
	return rv, nil
}

// Create fails with a duplicate-key error when the user already reviewed the field.
func (r *ReviewRepository) Create(ctx context.Context, rv *review.Review) error {
	if _, err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rv)); err != nil {
		return infra.ClassifyPgErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *review.Review) error {
	if _, err := r.queries.UpdateReview(ctx, r.db, converter.ReviewToUpdateParams(rv)); err != nil {
		return infra.ClassifyPgErr("failed to update review", err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteReview(ctx, r.db, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete review", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

// RecalcFieldStats locks the field row first so that concurrent review
// writes on one field recalculate in turn, each seeing the other's row.
func (r *ReviewRepository) RecalcFieldStats(ctx context.Context, fieldID uuid.UUID) error {
	if err := r.queries.LockFieldRatings(ctx, r.db, fieldID); err != nil {
		return infra.WrapRepoErr("failed to lock field ratings", err)
	}
	if err := r.queries.RecalcFieldRatingStats(ctx, r.db, fieldID); err != nil {
		return infra.WrapRepoErr("failed to recalculate field rating", err)
	}
	return nil
}

func (r *ReviewRepository) ReviewedFieldIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListReviewedFieldIDsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviewed fields", err)
	}
	return ids, nil
}
