package repository

import (
	"groanzone/internal/http-api/models"

	"gorm.io/gorm"
)

type RatingRepository interface {
	Create(rating *models.Rating) error
	Update(rating *models.Rating) error
	GetByUserAndJoke(userID string, jokeID int64) (*models.Rating, error)
	GetByJoke(jokeID int64) ([]models.Rating, error)
	CalculateAverage(jokeID int64) (float64, error)
	CountRatings(jokeID int64) (int64, error)
	HasUserRated(userID string, jokeID int64) (bool, error)
	CountByUser(userID string) (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// Update an existing rating
func (r *ratingRepository) Update(rating *models.Rating) error {
	return r.db.Save(rating).Error
}

// GetByUserAndJoke retrieves a user's rating for a specific joke
func (r *ratingRepository) GetByUserAndJoke(userID string, jokeID int64) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Where("user_id = ? AND joke_id = ?", userID, jokeID).
		Preload("User").
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetByJoke retrieves all ratings for a joke with their raters loaded
func (r *ratingRepository) GetByJoke(jokeID int64) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.Where("joke_id = ?", jokeID).
		Preload("User").
		Order("created_at ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CalculateAverage computes the average rating value for a joke.
// Returns 0 when the joke has no ratings.
func (r *ratingRepository) CalculateAverage(jokeID int64) (float64, error) {
	var avg struct {
		Average float64
	}

	err := r.db.Model(&models.Rating{}).
		Select("COALESCE(AVG(value), 0) as average").
		Where("joke_id = ?", jokeID).
		Scan(&avg).Error

	if err != nil {
		return 0, err
	}

	return avg.Average, nil
}

// CountRatings counts the total number of ratings for a joke
func (r *ratingRepository) CountRatings(jokeID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("joke_id = ?", jokeID).Count(&count).Error
	return count, err
}

// HasUserRated reports whether the user has rated the joke
func (r *ratingRepository) HasUserRated(userID string, jokeID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).
		Where("user_id = ? AND joke_id = ?", userID, jokeID).
		Count(&count).Error
	return count > 0, err
}

// CountByUser counts the ratings a user has submitted across all jokes
func (r *ratingRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Rating{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
