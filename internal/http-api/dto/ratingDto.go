package dto

import (
	"time"

	"groanzone/internal/http-api/models"
)

// CreateRatingDTO for creating or updating a rating
type CreateRatingDTO struct {
	Value int `json:"value" binding:"required,min=1,max=4"`
}

// RatingResponse for returning rating information (for list view - without IDs)
type RatingResponse struct {
	Username  string    `json:"username"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	username := rating.User.Username
	if username == "" {
		username = UnknownAuthor
	}
	return &RatingResponse{
		Username:  username,
		Value:     rating.Value,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
