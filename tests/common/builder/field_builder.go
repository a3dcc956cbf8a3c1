//go:build unit || e2e

package builder

import (
	"math"
	"math/big"
	"time"

	"field-booking/internal/domain/field"
	reqdto "field-booking/internal/handler/dto/request"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FieldBuilder struct {
	Name          string
	Location      string
	SportType     string
	PricePerHour  float64
	Active        bool
	ReviewCount   int
	AverageRating float64
}

func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{
		Name:         "Central Pitch",
		Location:     "12 Stadium Road",
		SportType:    "football",
		PricePerHour: 50,
		Active:       true,
	}
}

func (f *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	mutate(f)
	return f
}

func (f *FieldBuilder) BuildDomain() (*field.Field, error) {
	name, err := field.NewName(f.Name)
	if err != nil {
		return nil, err
	}
	location, err := field.NewLocation(f.Location)
	if err != nil {
		return nil, err
	}
	sportType, err := field.NewSportType(f.SportType)
	if err != nil {
		return nil, err
	}
	price, err := field.NewPrice(f.PricePerHour)
	if err != nil {
		return nil, err
	}

	built := field.NewField(name, location, sportType, price)
	if !f.Active {
		built.Deactivate()
	}
	return built, nil
}

func (f *FieldBuilder) BuildViewInfra() sqlc.FieldViews {
	row := f.BuildInfra()
	return sqlc.FieldViews{
		ID:            row.ID,
		Name:          row.Name,
		Location:      row.Location,
		SportType:     row.SportType,
		PricePerHour:  row.PricePerHour,
		Active:        row.Active,
		ReviewCount:   int32(f.ReviewCount),
		AverageRating: f.AverageRating,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func (f *FieldBuilder) BuildInfra() sqlc.Fields {
	now := time.Now()
	cents := int64(math.Round(f.PricePerHour * 100))
	return sqlc.Fields{
		ID:           uuid.New(),
		Name:         f.Name,
		Location:     f.Location,
		SportType:    f.SportType,
		PricePerHour: pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true},
		Active:       f.Active,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (f *FieldBuilder) BuildView() *queries.FieldView {
	now := time.Now()
	return &queries.FieldView{
		ID:            uuid.New(),
		Name:          f.Name,
		Location:      f.Location,
		SportType:     f.SportType,
		PricePerHour:  f.PricePerHour,
		Active:        f.Active,
		ReviewCount:   f.ReviewCount,
		AverageRating: f.AverageRating,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (f *FieldBuilder) BuildCreateRequestDTO() reqdto.CreateFieldRequest {
	return reqdto.CreateFieldRequest{
		Name:         f.Name,
		Location:     f.Location,
		SportType:    f.SportType,
		PricePerHour: f.PricePerHour,
	}
}

func (f *FieldBuilder) WithSportType(sportType string) *FieldBuilder {
	f.SportType = sportType
	return f
}

func (f *FieldBuilder) AsInactive() *FieldBuilder {
	f.Active = false
	return f
}

func (f *FieldBuilder) WithRating(count int, average float64) *FieldBuilder {
	f.ReviewCount = count
	f.AverageRating = average
	return f
}
