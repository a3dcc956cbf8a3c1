package readstore

import (
	"context"
	"time"

	"field-booking/internal/infra"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingViews, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.BookingViews, error)
	ListActiveSlotsByFieldAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveSlotsByFieldAndDateParams) ([]string, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
}

func NewBookingReadStore(queries BookingViewQueries) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return rowToBookingView(row)
}

func (r *BookingReadStore) List(ctx context.Context, db sqlc.DBTX, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingViewsParams{
		UserID:     pgconv.UUIDPtrToPgtype(filter.UserID),
		Status:     pgconv.StringPtrToPgtype(filter.Status),
		FieldID:    pgconv.UUIDPtrToPgtype(filter.FieldID),
		FromDate:   pgconv.DatePtrToPgtype(filter.From),
		ToDate:     pgconv.DatePtrToPgtype(filter.To),
		Descending: filter.Descending,
	}

	rows, err := r.queries.ListBookingViews(ctx, db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	result := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := rowToBookingView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

// ActiveSlots lists the slots held by non-cancelled bookings.
func (r *BookingReadStore) ActiveSlots(ctx context.Context, db sqlc.DBTX, fieldID uuid.UUID, date time.Time) ([]string, error) {
	slots, err := r.queries.ListActiveSlotsByFieldAndDate(ctx, db, sqlc.ListActiveSlotsByFieldAndDateParams{
		FieldID:     fieldID,
		BookingDate: pgconv.DateToPgtype(date),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	return slots, nil
}

func rowToBookingView(row sqlc.BookingViews) (*queries.BookingView, error) {
	price, err := priceFromNumeric(row.FieldPricePerHour)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:       row.ID,
		Date:     pgconv.DateFromPgtype(row.BookingDate),
		TimeSlot: row.TimeSlot,
		Status:   row.Status,
		User: queries.UserSummary{
			ID:    row.UserID,
			Name:  row.UserName,
			Email: row.UserEmail,
		},
		Field: queries.FieldSummary{
			ID:           row.FieldID,
			Name:         row.FieldName,
			Location:     row.FieldLocation,
			SportType:    row.FieldSportType,
			PricePerHour: price,
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func priceFromNumeric(n pgtype.Numeric) (float64, error) {
	v, err := pgconv.Float64FromNumeric(n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to convert price", err)
	}
	return v, nil
}
