package converter

import (
	"fmt"

	"field-booking/internal/domain/field"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/pkg/pgconv"
)

func FieldToCreateParams(f *field.Field) (sqlc.CreateFieldParams, error) {
	price, err := pgconv.NumericFromFloat64(f.PricePerHour().Value())
	if err != nil {
		return sqlc.CreateFieldParams{}, err
	}
	return sqlc.CreateFieldParams{
		ID:           f.ID(),
		Name:         f.Name().Value(),
		Location:     f.Location().Value(),
		SportType:    f.SportType().String(),
		PricePerHour: price,
		Active:       f.IsActive(),
	}, nil
}

func FieldToUpdateParams(f *field.Field) (sqlc.UpdateFieldParams, error) {
	price, err := pgconv.NumericFromFloat64(f.PricePerHour().Value())
	if err != nil {
		return sqlc.UpdateFieldParams{}, err
	}
	return sqlc.UpdateFieldParams{
		ID:           f.ID(),
		Name:         f.Name().Value(),
		Location:     f.Location().Value(),
		SportType:    f.SportType().String(),
		PricePerHour: price,
		Active:       f.IsActive(),
	}, nil
}

func FieldFromRow(row sqlc.Fields) (*field.Field, error) {
	name, err := field.NewName(row.Name)
	if err != nil {
		return nil, fmt.Errorf("stored field %s: %w", row.ID, err)
	}
	location, err := field.NewLocation(row.Location)
	if err != nil {
		return nil, fmt.Errorf("stored field %s: %w", row.ID, err)
	}
	sportType, err := field.NewSportType(row.SportType)
	if err != nil {
		return nil, fmt.Errorf("stored field %s: %w", row.ID, err)
	}
	amount, err := pgconv.Float64FromNumeric(row.PricePerHour)
	if err != nil {
		return nil, fmt.Errorf("stored field %s: %w", row.ID, err)
	}
	price, err := field.NewPrice(amount)
	if err != nil {
		return nil, fmt.Errorf("stored field %s: %w", row.ID, err)
	}

	return field.ReconstructField(
		row.ID,
		name,
		location,
		sportType,
		price,
		row.Active,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
