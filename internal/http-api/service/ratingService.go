package service

import (
	"errors"
	"math"

	"groanzone/internal/http-api/authz"
	"groanzone/internal/http-api/dto"
	"groanzone/internal/http-api/models"
	"groanzone/internal/http-api/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrInvalidRatingValue = errors.New("rating value must be between 1 and 4")

const (
	MinRatingValue = 1
	MaxRatingValue = 4
)

type RatingService interface {
	// UpsertRating records userID's rating for a joke, replacing any
	// previous value. At most one rating per (user, joke) exists after
	// a successful call.
	UpsertRating(userID string, jokeID int64, value int) (*dto.RatingResponse, error)
	GetJokeRatings(jokeID int64) ([]dto.RatingResponse, error)
	GetSummary(jokeID int64, viewerID string) (*dto.RatingSummary, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	jokeRepo   repository.JokeRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, jokeRepo repository.JokeRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		jokeRepo:   jokeRepo,
	}
}

// isDuplicateKey recognizes a unique-index violation from either GORM's
// translated error or the raw Postgres error code.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (s *ratingService) UpsertRating(userID string, jokeID int64, value int) (*dto.RatingResponse, error) {
	// rating is not owner-scoped; any signed-in user may rate any joke
	if err := authz.Authorize(authz.ActionRate, userID, ""); err != nil {
		return nil, err
	}

	if value < MinRatingValue || value > MaxRatingValue {
		return nil, ErrInvalidRatingValue
	}

	// Check if joke exists
	if _, err := s.jokeRepo.GetByID(jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJokeNotFound
		}
		return nil, err
	}

	// Check if rating already exists
	existing, err := s.ratingRepo.GetByUserAndJoke(userID, jokeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil {
		// Overwrite in place, keeping the row identity
		existing.Value = value
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		return dto.FromModelToRatingResponse(existing), nil
	}

	newRating := &models.Rating{
		UserID: userID,
		JokeID: jokeID,
		Value:  value,
	}
	if err := s.ratingRepo.Create(newRating); err != nil {
		if !isDuplicateKey(err) {
			return nil, err
		}
		// A concurrent request inserted the row between our lookup and
		// the insert. The unique index turned that race into a conflict;
		// retry as an update against the row that won.
		existing, err = s.ratingRepo.GetByUserAndJoke(userID, jokeID)
		if err != nil {
			return nil, err
		}
		existing.Value = value
		if err := s.ratingRepo.Update(existing); err != nil {
			return nil, err
		}
		return dto.FromModelToRatingResponse(existing), nil
	}

	// Reload with user data
	rating, err := s.ratingRepo.GetByUserAndJoke(userID, jokeID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToRatingResponse(rating), nil
}

// GetJokeRatings returns every rating for a joke with the rater's name.
func (s *ratingService) GetJokeRatings(jokeID int64) ([]dto.RatingResponse, error) {
	if _, err := s.jokeRepo.GetByID(jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJokeNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.GetByJoke(jokeID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&ratings[i]))
	}
	return responses, nil
}

// GetSummary computes the aggregate rating view for a joke as seen by
// viewerID. Average is rounded to one decimal and is exactly 0 when the
// joke has no ratings.
func (s *ratingService) GetSummary(jokeID int64, viewerID string) (*dto.RatingSummary, error) {
	if _, err := s.jokeRepo.GetByID(jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJokeNotFound
		}
		return nil, err
	}

	count, err := s.ratingRepo.CountRatings(jokeID)
	if err != nil {
		return nil, err
	}

	summary := &dto.RatingSummary{Count: int(count)}
	if count == 0 {
		return summary, nil
	}

	avg, err := s.ratingRepo.CalculateAverage(jokeID)
	if err != nil {
		return nil, err
	}
	summary.Average = math.Round(avg*10) / 10

	rated, err := s.ratingRepo.HasUserRated(viewerID, jokeID)
	if err != nil {
		return nil, err
	}
	summary.RatedByMe = rated

	return summary, nil
}
