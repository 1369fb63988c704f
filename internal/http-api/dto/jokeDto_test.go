package dto

import (
	"testing"

	"groanzone/internal/http-api/models"

	"github.com/stretchr/testify/assert"
)

func TestSummaryOfEmpty(t *testing.T) {
	s := SummaryOf(nil, "viewer-1")
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 0.0, s.Average)
	assert.False(t, s.RatedByMe)
}

func TestSummaryOfTwoRaters(t *testing.T) {
	ratings := []models.Rating{
		{UserID: "user-b", Value: 3},
		{UserID: "user-c", Value: 4},
	}

	forRater := SummaryOf(ratings, "user-b")
	assert.Equal(t, 2, forRater.Count)
	assert.Equal(t, 3.5, forRater.Average)
	assert.True(t, forRater.RatedByMe)

	forStranger := SummaryOf(ratings, "user-z")
	assert.Equal(t, 2, forStranger.Count)
	assert.Equal(t, 3.5, forStranger.Average)
	assert.False(t, forStranger.RatedByMe)
}

func TestSummaryOfRoundsToOneDecimal(t *testing.T) {
	ratings := []models.Rating{
		{UserID: "a", Value: 1},
		{UserID: "b", Value: 1},
		{UserID: "c", Value: 2},
	}
	// 4/3 = 1.333... rounds to 1.3
	assert.Equal(t, 1.3, SummaryOf(ratings, "").Average)
}

func TestFromModelToJokeResponseUnknownAuthor(t *testing.T) {
	joke := &models.Joke{
		ID:        7,
		Setup:     "Why?",
		Punchline: "Because.",
		UserID:    "gone-user",
		// User association not resolvable
	}

	resp := FromModelToJokeResponse(joke, "viewer-1")
	assert.Equal(t, UnknownAuthor, resp.AuthorUsername)
	assert.Equal(t, "Why?", resp.Setup)
	assert.Equal(t, "Because.", resp.Punchline)
	assert.Equal(t, 0, resp.RatingCount)
	assert.Equal(t, 0.0, resp.AvgRating)
}
