package field

import (
	"time"

	"github.com/google/uuid"
)

// Field is a bookable sports venue. Inactive fields drop out of the public
// catalogue but keep their bookings.
type Field struct {
	id           uuid.UUID
	name         Name
	location     Location
	sportType    SportType
	pricePerHour Price
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewField(name Name, location Location, sportType SportType, price Price) *Field {
	return &Field{
		id:           uuid.New(),
		name:         name,
		location:     location,
		sportType:    sportType,
		pricePerHour: price,
		active:       true,
	}
}

func ReconstructField(id uuid.UUID, name Name, location Location, sportType SportType, price Price, active bool, createdAt, updatedAt time.Time) *Field {
	return &Field{
		id:           id,
		name:         name,
		location:     location,
		sportType:    sportType,
		pricePerHour: price,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (f *Field) ID() uuid.UUID        { return f.id }
func (f *Field) Name() Name           { return f.name }
func (f *Field) Location() Location   { return f.location }
func (f *Field) SportType() SportType { return f.sportType }
func (f *Field) PricePerHour() Price  { return f.pricePerHour }
func (f *Field) IsActive() bool       { return f.active }
func (f *Field) CreatedAt() time.Time { return f.createdAt }
func (f *Field) UpdatedAt() time.Time { return f.updatedAt }

// Patch carries already validated replacements; nil leaves a value unchanged.
type Patch struct {
	Name         *Name
	Location     *Location
	SportType    *SportType
	PricePerHour *Price
	Active       *bool
}

func (f *Field) Apply(p Patch) {
	if p.Name != nil {
		f.name = *p.Name
	}
	if p.Location != nil {
		f.location = *p.Location
	}
	if p.SportType != nil {
		f.sportType = *p.SportType
	}
	if p.PricePerHour != nil {
		f.pricePerHour = *p.PricePerHour
	}
	if p.Active != nil {
		f.active = *p.Active
	}
}

func (f *Field) Deactivate() {
	f.active = false
}
