package request

import (
	"field-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=user manager admin"`
}

func (r *CreateUserRequest) ToCommand() (commands.CreateUserRequest, error) {
	var cmd commands.CreateUserRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}

type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=50"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
	Role     *string `json:"role" binding:"omitempty,oneof=user manager admin"`
}

func (r *UpdateUserRequest) ToCommand() (commands.UpdateUserRequest, error) {
	var cmd commands.UpdateUserRequest
	err := copier.Copy(&cmd, r)
	return cmd, err
}
