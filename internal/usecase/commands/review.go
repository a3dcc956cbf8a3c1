package commands

import (
	"context"
	"log/slog"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/booking"
	"field-booking/internal/domain/review"
	"field-booking/internal/pkg/clock"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrReviewNotFound = shared.ErrReviewNotFound

type CreateReviewRequest struct {
	Rating  int
	Comment string
}

// UpdateReviewRequest is a partial update; nil fields are left unchanged.
type UpdateReviewRequest struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	// Create requires a confirmed booking of the field on an earlier day.
	Create(ctx context.Context, actor authz.Actor, fieldID uuid.UUID, req CreateReviewRequest) (uuid.UUID, error)
	Update(ctx context.Context, actor authz.Actor, reviewID uuid.UUID, req UpdateReviewRequest) error
	Delete(ctx context.Context, actor authz.Actor, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow    shared.UnitOfWork
	rules  *booking.Rules
	clock  clock.Clock
	cache  shared.FieldCache
	logger *slog.Logger
}

func NewReviewCommands(uow shared.UnitOfWork, rules *booking.Rules, clk clock.Clock, cache shared.FieldCache, logger *slog.Logger) ReviewCommands {
	return &reviewCommandsImpl{
		uow:    uow,
		rules:  rules,
		clock:  clk,
		cache:  cache,
		logger: logger,
	}
}

func (uc *reviewCommandsImpl) Create(ctx context.Context, actor authz.Actor, fieldID uuid.UUID, req CreateReviewRequest) (uuid.UUID, error) {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rv := review.NewReview(actor.ID, fieldID, rating, comment)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Fields().FindByID(ctx, fieldID); err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}

		played, err := tx.Bookings().CountConfirmedBefore(ctx, actor.ID, fieldID, uc.rules.Today(uc.clock.Now()))
		if err != nil {
			return err
		}
		if played == 0 {
			return review.ErrNotEligible
		}

		if err := tx.Reviews().Create(ctx, rv); err != nil {
			if errs.Is(err, errs.ErrDuplicateRecord) {
				return review.ErrAlreadyExists
			}
			return err
		}
		if err := tx.Reviews().RecalcFieldStats(ctx, fieldID); err != nil {
			return err
		}
		tx.AfterCommit(uc.invalidate)
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return rv.ID(), nil
}

func (uc *reviewCommandsImpl) Update(ctx context.Context, actor authz.Actor, reviewID uuid.UUID, req UpdateReviewRequest) error {
	var rating *review.Rating
	if req.Rating != nil {
		r, err := review.NewRating(*req.Rating)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		rating = &r
	}
	var comment *review.Comment
	if req.Comment != nil {
		c, err := review.NewComment(*req.Comment)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		comment = &c
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := tx.Reviews().FindByIDForUpdate(ctx, reviewID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrReviewNotFound)
		}
		if err := authz.Require(actor, authz.ModifyReview, rv.UserID()); err != nil {
			return err
		}

		rv.Revise(rating, comment)
		if err := tx.Reviews().Update(ctx, rv); err != nil {
			return err
		}
		if rating == nil {
			return nil
		}
		if err := tx.Reviews().RecalcFieldStats(ctx, rv.FieldID()); err != nil {
			return err
		}
		tx.AfterCommit(uc.invalidate)
		return nil
	})
}

func (uc *reviewCommandsImpl) Delete(ctx context.Context, actor authz.Actor, reviewID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rv, err := tx.Reviews().FindByIDForUpdate(ctx, reviewID)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrReviewNotFound)
		}
		if err := authz.Require(actor, authz.DeleteReview, rv.UserID()); err != nil {
			return err
		}

		if err := tx.Reviews().Delete(ctx, reviewID); err != nil {
			return shared.NotFoundAs(err, shared.ErrReviewNotFound)
		}
		if err := tx.Reviews().RecalcFieldStats(ctx, rv.FieldID()); err != nil {
			return err
		}
		tx.AfterCommit(uc.invalidate)
		return nil
	})
}

func (uc *reviewCommandsImpl) invalidate(ctx context.Context) {
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.WarnContext(ctx, "failed to invalidate field cache", "error", err.Error())
	}
}
