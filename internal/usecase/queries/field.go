package queries

import (
	"context"
	"log/slog"

	"field-booking/internal/domain/booking"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/ptr"
	"field-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type FieldQueries interface {
	// List returns active fields, optionally of one sport.
	List(ctx context.Context, sportType *string) ([]*FieldView, error)
	// GetByID also returns inactive fields.
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	Availability(ctx context.Context, id uuid.UUID, date string) (*FieldAvailability, error)
}

type FieldReadStore interface {
	FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*FieldView, error)
	ListActive(ctx context.Context, db sqlc.DBTX, sportType *string) ([]*FieldView, error)
}

// OpeningHours bounds the slots offered per day, [Open, Close).
type OpeningHours struct {
	Open  int
	Close int
}

type fieldQueriesImpl struct {
	uow      shared.UnitOfWork
	fields   FieldReadStore
	bookings BookingReadStore
	cache    shared.FieldCache
	hours    OpeningHours
	logger   *slog.Logger
}

func NewFieldQueries(uow shared.UnitOfWork, fields FieldReadStore, bookings BookingReadStore, cache shared.FieldCache, hours OpeningHours, logger *slog.Logger) FieldQueries {
	return &fieldQueriesImpl{
		uow:      uow,
		fields:   fields,
		bookings: bookings,
		cache:    cache,
		hours:    hours,
		logger:   logger,
	}
}

func (q *fieldQueriesImpl) List(ctx context.Context, sportType *string) ([]*FieldView, error) {
	key := ptr.Deref(sportType)

	var cached []*FieldView
	hit, err := q.cache.Get(ctx, key, &cached)
	if err != nil {
		q.logger.WarnContext(ctx, "field cache read failed", "key", key, "error", err.Error())
	}
	if hit {
		return cached, nil
	}

	gen, genErr := q.cache.Generation(ctx)
	if genErr != nil {
		q.logger.WarnContext(ctx, "field cache generation read failed", "error", genErr.Error())
	}

	var views []*FieldView
	err = q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		var err error
		views, err = q.fields.ListActive(ctx, db, sportType)
		return err
	})
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return views, nil
	}
	if err := q.cache.Set(ctx, key, gen, views); err != nil {
		q.logger.WarnContext(ctx, "field cache write failed", "key", key, "error", err.Error())
	}
	return views, nil
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	var view *FieldView
	err := q.uow.WithDB(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		v, err := q.fields.FindByID(ctx, db, id)
		if err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}
		view = v
		return nil
	})
	return view, err
}

func (q *fieldQueriesImpl) Availability(ctx context.Context, id uuid.UUID, date string) (*FieldAvailability, error) {
	day, err := booking.ParseDate(date)
	if err != nil {
		return nil, err
	}

	var taken []string
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.fields.FindByID(ctx, db, id); err != nil {
			return shared.NotFoundAs(err, shared.ErrFieldNotFound)
		}
		taken, err = q.bookings.ActiveSlots(ctx, db, id, day)
		return err
	})
	if err != nil {
		return nil, err
	}

	held := make(map[string]bool, len(taken))
	for _, s := range taken {
		held[s] = true
	}

	slots := booking.DaySlots(q.hours.Open, q.hours.Close)
	result := &FieldAvailability{
		FieldID: id,
		Date:    day,
		Slots:   make([]SlotAvailability, 0, len(slots)),
	}
	for _, slot := range slots {
		result.Slots = append(result.Slots, SlotAvailability{
			TimeSlot:  slot.String(),
			Available: !held[slot.String()],
		})
	}
	return result, nil
}
