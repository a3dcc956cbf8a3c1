package request

import (
	"field-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateFieldRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	SportType    string  `json:"sportType" binding:"required,oneof=football basketball tennis padel"`
	PricePerHour float64 `json:"pricePerHour" binding:"required,gt=0"`
}

func (r *CreateFieldRequest) ToCommand() (commands.CreateFieldRequest, error) {
	var cmd commands.CreateFieldRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type UpdateFieldRequest struct {
	Name         *string  `json:"name"`
	Location     *string  `json:"location"`
	SportType    *string  `json:"sportType" binding:"omitempty,oneof=football basketball tennis padel"`
	PricePerHour *float64 `json:"pricePerHour" binding:"omitempty,gt=0"`
	Active       *bool    `json:"active"`
}

func (r *UpdateFieldRequest) ToCommand() (commands.UpdateFieldRequest, error) {
	var cmd commands.UpdateFieldRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type ListFieldsQuery struct {
	SportType string `form:"sportType" binding:"omitempty,oneof=football basketball tennis padel"`
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required"`
}
