package request

import (
	"field-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *CreateReviewRequest) ToCommand() (commands.CreateReviewRequest, error) {
	var cmd commands.CreateReviewRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToCommand() (commands.UpdateReviewRequest, error) {
	var cmd commands.UpdateReviewRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type ListReviewsQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}
