package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"groanzone/internal/http-api/authz"
	"groanzone/internal/http-api/dto"
	"groanzone/internal/http-api/middleware"
	"groanzone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type JokeHandler struct {
	jokeService service.JokeService
}

func NewJokeHandler(jokeService service.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// RegisterRoutes registers joke CRUD routes. The group is expected to be
// behind the session middleware already.
func (h *JokeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.POST("", h.Create)
	router.GET("/:joke_id", h.Get)
	router.PUT("/:joke_id", h.Update)
	router.DELETE("/:joke_id", h.Delete)
}

// respondJokeError maps service and authz errors to HTTP statuses. The
// forbidden response deliberately carries no resource detail.
func respondJokeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrJokeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, authz.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not-authenticated", "login": middleware.LoginPath})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// List returns every joke with its author and rating summary
// GET /api/jokes
func (h *JokeHandler) List(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)

	resp, err := h.jokeService.List(viewerID)
	if err != nil {
		respondJokeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Create adds a new joke owned by the session user
// POST /api/jokes
func (h *JokeHandler) Create(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	var req dto.CreateJokeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.jokeService.Create(userID, req.Setup, req.Punchline)
	if err != nil {
		respondJokeError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/jokes/%d", resp.ID))
	c.JSON(http.StatusCreated, resp)
}

// Get returns the joke detail with its individual ratings
// GET /api/jokes/:joke_id
func (h *JokeHandler) Get(c *gin.Context) {
	jokeID, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joke ID"})
		return
	}

	viewerID := middleware.CurrentUserID(c)

	resp, err := h.jokeService.GetDetail(jokeID, viewerID)
	if err != nil {
		respondJokeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update edits a joke's setup/punchline; owner only
// PUT /api/jokes/:joke_id
func (h *JokeHandler) Update(c *gin.Context) {
	jokeID, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joke ID"})
		return
	}

	userID := middleware.CurrentUserID(c)

	var req dto.UpdateJokeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.jokeService.Update(jokeID, userID, req)
	if err != nil {
		respondJokeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete removes a joke and its ratings; owner only
// DELETE /api/jokes/:joke_id
func (h *JokeHandler) Delete(c *gin.Context) {
	jokeID, err := strconv.ParseInt(c.Param("joke_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid joke ID"})
		return
	}

	userID := middleware.CurrentUserID(c)

	var req dto.DeleteJokeDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.jokeService.Delete(jokeID, req.ID, userID); err != nil {
		respondJokeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "joke deleted"})
}
