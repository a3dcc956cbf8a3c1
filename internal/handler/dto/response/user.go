package response

import (
	"time"

	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(vs))
	for i, v := range vs {
		res[i] = FromUserView(v)
	}
	return res
}
