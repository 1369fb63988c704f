package repository

import (
	"groanzone/internal/http-api/models"

	"gorm.io/gorm"
)

type JokeRepository interface {
	Create(joke *models.Joke) error
	Update(joke *models.Joke) error
	Delete(jokeID int64) error
	GetByID(jokeID int64) (*models.Joke, error)
	GetByIDWithRatings(jokeID int64) (*models.Joke, error)
	List() ([]models.Joke, error)
	CountByAuthor(userID string) (int64, error)
}

type jokeRepository struct {
	db *gorm.DB
}

func NewJokeRepository(db *gorm.DB) JokeRepository {
	return &jokeRepository{db: db}
}

// Create a new joke
func (r *jokeRepository) Create(joke *models.Joke) error {
	return r.db.Create(joke).Error
}

// Update an existing joke
func (r *jokeRepository) Update(joke *models.Joke) error {
	return r.db.Save(joke).Error
}

// Delete removes a joke and its ratings in one transaction. Ratings are
// removed explicitly so the behavior does not depend on the database
// enforcing the FK cascade.
func (r *jokeRepository) Delete(jokeID int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("joke_id = ?", jokeID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Joke{}, jokeID).Error
	})
}

// GetByID retrieves a joke without its associations. Used for ownership
// checks and updates.
func (r *jokeRepository) GetByID(jokeID int64) (*models.Joke, error) {
	var joke models.Joke
	if err := r.db.First(&joke, jokeID).Error; err != nil {
		return nil, err
	}
	return &joke, nil
}

// GetByIDWithRatings retrieves a joke with its author and every rating's
// rater loaded, for the detail view.
func (r *jokeRepository) GetByIDWithRatings(jokeID int64) (*models.Joke, error) {
	var joke models.Joke
	err := r.db.Preload("User").
		Preload("Ratings").
		Preload("Ratings.User").
		First(&joke, jokeID).Error
	if err != nil {
		return nil, err
	}
	return &joke, nil
}

// List retrieves all jokes with authors and ratings loaded, in database
// order. No ordering is imposed here.
func (r *jokeRepository) List() ([]models.Joke, error) {
	var jokes []models.Joke
	err := r.db.Preload("User").
		Preload("Ratings").
		Find(&jokes).Error
	if err != nil {
		return nil, err
	}
	return jokes, nil
}

// CountByAuthor counts the jokes created by a user
func (r *jokeRepository) CountByAuthor(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Joke{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
