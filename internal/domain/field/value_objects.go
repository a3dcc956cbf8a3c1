package field

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidName      = errors.New("field name must be between 3 and 50 characters")
	ErrInvalidLocation  = errors.New("field location must be between 5 and 100 characters")
	ErrInvalidSportType = errors.New("sport type must be one of football, basketball, tennis, padel")
	ErrInvalidPrice     = errors.New("price per hour must be greater than zero")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 3 || n > 50 {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string { return n.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n < 5 || n > 100 {
		return Location{}, ErrInvalidLocation
	}
	return Location{value: s}, nil
}

func (l Location) Value() string { return l.value }

// Price is an hourly rate rounded to cents.
type Price struct {
	value float64
}

func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: math.Round(v*100) / 100}, nil
}

func (p Price) Value() float64 { return p.value }
