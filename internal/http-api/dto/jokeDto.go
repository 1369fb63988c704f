package dto

import (
	"math"
	"time"

	"groanzone/internal/http-api/models"
)

// UnknownAuthor is shown when a joke's author record cannot be resolved.
const UnknownAuthor = "Unknown"

// CreateJokeDTO used for POST /api/jokes
type CreateJokeDTO struct {
	Setup     string `json:"setup" binding:"required,min=2"`
	Punchline string `json:"punchline" binding:"required,min=2"`
}

// UpdateJokeDTO used for PUT /api/jokes/:joke_id. The body carries the id
// so the handler can reject requests whose body and path disagree.
type UpdateJokeDTO struct {
	ID        int64  `json:"id" binding:"required"`
	Setup     string `json:"setup" binding:"required,min=2"`
	Punchline string `json:"punchline" binding:"required,min=2"`
}

// DeleteJokeDTO used for DELETE /api/jokes/:joke_id
type DeleteJokeDTO struct {
	ID int64 `json:"id" binding:"required"`
}

// RatingSummary is the aggregate view of a joke's ratings.
type RatingSummary struct {
	Count     int     `json:"count"`
	Average   float64 `json:"average"` // 1 decimal place, 0 when no ratings
	RatedByMe bool    `json:"rated_by_me"`
}

// JokeResponse DTO for list and detail responses
type JokeResponse struct {
	ID             int64     `json:"id"`
	Setup          string    `json:"setup"`
	Punchline      string    `json:"punchline"`
	AuthorUsername string    `json:"author_username"`
	UserID         string    `json:"user_id"`
	RatingCount    int       `json:"rating_count"`
	AvgRating      float64   `json:"avg_rating"`
	RatedByMe      bool      `json:"rated_by_me"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JokeListResponse wraps the full listing
type JokeListResponse struct {
	AllJokes   []JokeResponse `json:"all_jokes"`
	TotalCount int            `json:"total_count"`
}

// JokeDetailResponse adds the individual ratings to the joke view
type JokeDetailResponse struct {
	JokeResponse
	Ratings []RatingResponse `json:"ratings"`
}

// SummaryOf computes the aggregate over a preloaded rating set. The
// average is the arithmetic mean rounded to one decimal, exactly 0 when
// there are no ratings.
func SummaryOf(ratings []models.Rating, viewerID string) RatingSummary {
	s := RatingSummary{Count: len(ratings)}
	if s.Count == 0 {
		return s
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Value
		if r.UserID == viewerID {
			s.RatedByMe = true
		}
	}
	s.Average = math.Round(float64(sum)/float64(s.Count)*10) / 10
	return s
}

// FromModelToJokeResponse converts a Joke (with User and Ratings preloaded)
// to a JokeResponse as seen by viewerID.
func FromModelToJokeResponse(joke *models.Joke, viewerID string) JokeResponse {
	author := joke.User.Username
	if author == "" {
		author = UnknownAuthor
	}
	summary := SummaryOf(joke.Ratings, viewerID)
	return JokeResponse{
		ID:             joke.ID,
		Setup:          joke.Setup,
		Punchline:      joke.Punchline,
		AuthorUsername: author,
		UserID:         joke.UserID,
		RatingCount:    summary.Count,
		AvgRating:      summary.Average,
		RatedByMe:      summary.RatedByMe,
		CreatedAt:      joke.CreatedAt,
		UpdatedAt:      joke.UpdatedAt,
	}
}
