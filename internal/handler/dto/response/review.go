package response

import (
	"time"

	"field-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewAuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ReviewResponse struct {
	ID        uuid.UUID            `json:"id"`
	FieldID   uuid.UUID            `json:"fieldId"`
	Author    ReviewAuthorResponse `json:"author"`
	Rating    int                  `json:"rating"`
	Comment   string               `json:"comment"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type ReviewPageResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:        v.ID,
		FieldID:   v.FieldID,
		Author:    ReviewAuthorResponse(v.Author),
		Rating:    v.Rating,
		Comment:   v.Comment,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func FromReviewPage(p *queries.ReviewPage) *ReviewPageResponse {
	reviews := make([]*ReviewResponse, len(p.Reviews))
	for i, v := range p.Reviews {
		reviews[i] = FromReviewView(v)
	}
	return &ReviewPageResponse{Reviews: reviews, NextCursor: p.NextCursor}
}
