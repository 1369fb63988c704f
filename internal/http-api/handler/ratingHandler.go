package handler

import (
	"errors"
	"net/http"
	"strconv"

	"groanzone/internal/http-api/dto"
	"groanzone/internal/http-api/middleware"
	"groanzone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating routes under the jokes group, which is
// already behind the session middleware.
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/:joke_id/ratings")
	{
		ratings.GET("", h.List)               // all ratings for a joke
		ratings.GET("/average", h.GetAverage) // count, average, rated_by_me
		ratings.POST("", h.CreateOrUpdate)    // upsert the caller's rating
	}
}

func respondRatingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRatingValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrJokeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateOrUpdate records the caller's rating for a joke, replacing any
// previous one
// POST /api/jokes/:joke_id/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	jokeID, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joke ID"})
		return
	}

	userID := middleware.CurrentUserID(c)

	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.UpsertRating(userID, jokeID, req.Value)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// List retrieves all ratings for a joke with the raters' names
// GET /api/jokes/:joke_id/ratings
func (h *RatingHandler) List(c *gin.Context) {
	jokeID, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joke ID"})
		return
	}

	ratings, err := h.ratingService.GetJokeRatings(jokeID)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ratings)
}

// GetAverage retrieves the aggregate rating view for a joke
// GET /api/jokes/:joke_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	jokeID, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joke ID"})
		return
	}

	viewerID := middleware.CurrentUserID(c)

	summary, err := h.ratingService.GetSummary(jokeID, viewerID)
	if err != nil {
		respondRatingError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
