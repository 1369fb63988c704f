package service

import (
	"errors"
	"time"

	"groanzone/internal/http-api/authz"
	"groanzone/internal/http-api/dto"
	"groanzone/internal/http-api/models"
	"groanzone/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrJokeNotFound = errors.New("joke not found")
	// ErrIDMismatch means the id in the request body disagrees with the
	// id in the path. Checked before existence and ownership.
	ErrIDMismatch = errors.New("body id does not match path id")
)

type JokeService interface {
	Create(userID, setup, punchline string) (*dto.JokeResponse, error)
	Update(jokeID int64, userID string, req dto.UpdateJokeDTO) (*dto.JokeResponse, error)
	Delete(jokeID, bodyID int64, userID string) error
	GetDetail(jokeID int64, viewerID string) (*dto.JokeDetailResponse, error)
	List(viewerID string) (*dto.JokeListResponse, error)
}

type jokeService struct {
	jokeRepo repository.JokeRepository
}

func NewJokeService(jokeRepo repository.JokeRepository) JokeService {
	return &jokeService{jokeRepo: jokeRepo}
}

// Create persists a new joke owned by userID. Both timestamps are set
// from the same UTC instant so a fresh joke always has
// created_at == updated_at.
func (s *jokeService) Create(userID, setup, punchline string) (*dto.JokeResponse, error) {
	if err := authz.Authorize(authz.ActionCreate, userID, ""); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	joke := &models.Joke{
		Setup:     setup,
		Punchline: punchline,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.jokeRepo.Create(joke); err != nil {
		return nil, err
	}

	// Reload with author data
	joke, err := s.jokeRepo.GetByIDWithRatings(joke.ID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToJokeResponse(joke, userID)
	return &resp, nil
}

// Update applies new setup/punchline to an existing joke. The checks run
// in a fixed order: body/path id match, then existence, then ownership.
func (s *jokeService) Update(jokeID int64, userID string, req dto.UpdateJokeDTO) (*dto.JokeResponse, error) {
	if req.ID != jokeID {
		return nil, ErrIDMismatch
	}

	joke, err := s.jokeRepo.GetByID(jokeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJokeNotFound
		}
		return nil, err
	}

	if err := authz.Authorize(authz.ActionEdit, userID, joke.UserID); err != nil {
		return nil, err
	}

	joke.Setup = req.Setup
	joke.Punchline = req.Punchline
	joke.UpdatedAt = time.Now().UTC()
	if err := s.jokeRepo.Update(joke); err != nil {
		return nil, err
	}

	joke, err = s.jokeRepo.GetByIDWithRatings(jokeID)
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToJokeResponse(joke, userID)
	return &resp, nil
}

// Delete removes a joke and its ratings. Same check order as Update.
func (s *jokeService) Delete(jokeID, bodyID int64, userID string) error {
	if bodyID != jokeID {
		return ErrIDMismatch
	}

	joke, err := s.jokeRepo.GetByID(jokeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJokeNotFound
		}
		return err
	}

	if err := authz.Authorize(authz.ActionDelete, userID, joke.UserID); err != nil {
		return err
	}

	return s.jokeRepo.Delete(jokeID)
}

// GetDetail assembles the single-joke view: the joke, its aggregate
// summary as seen by viewerID, and every individual rating with the
// rater's name.
func (s *jokeService) GetDetail(jokeID int64, viewerID string) (*dto.JokeDetailResponse, error) {
	joke, err := s.jokeRepo.GetByIDWithRatings(jokeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJokeNotFound
		}
		return nil, err
	}

	detail := &dto.JokeDetailResponse{
		JokeResponse: dto.FromModelToJokeResponse(joke, viewerID),
		Ratings:      make([]dto.RatingResponse, 0, len(joke.Ratings)),
	}
	for i := range joke.Ratings {
		detail.Ratings = append(detail.Ratings, *dto.FromModelToRatingResponse(&joke.Ratings[i]))
	}
	return detail, nil
}

// List assembles the listing: one record per joke in the order the
// store returned them.
func (s *jokeService) List(viewerID string) (*dto.JokeListResponse, error) {
	jokes, err := s.jokeRepo.List()
	if err != nil {
		return nil, err
	}

	resp := &dto.JokeListResponse{
		AllJokes: make([]dto.JokeResponse, 0, len(jokes)),
	}
	for i := range jokes {
		resp.AllJokes = append(resp.AllJokes, dto.FromModelToJokeResponse(&jokes[i], viewerID))
	}
	resp.TotalCount = len(resp.AllJokes)
	return resp, nil
}
