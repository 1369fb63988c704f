package service

import (
	"context"
	"errors"

	"groanzone/internal/http-api/dto"
	"groanzone/internal/http-api/models"
	"groanzone/internal/http-api/repository"
	"groanzone/internal/middleware/auth"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService interface {
	// Register creates the user and signs them in, returning the new
	// session token.
	Register(ctx context.Context, username, password, email string) (token string, user *models.User, err error)
	Login(ctx context.Context, username, password string) (token string, user *models.User, err error)
	Logout(ctx context.Context, token string) error
	Profile(userID string) (*dto.ProfileResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jokeRepo   repository.JokeRepository
	ratingRepo repository.RatingRepository
	sessions   SessionStore
}

func NewAuthService(
	userRepo repository.UserRepository,
	jokeRepo repository.JokeRepository,
	ratingRepo repository.RatingRepository,
	sessions SessionStore,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		jokeRepo:   jokeRepo,
		ratingRepo: ratingRepo,
		sessions:   sessions,
	}
}

// Register registers a new user with the given username, password, and email.
func (s *authService) Register(ctx context.Context, username, password, email string) (string, *models.User, error) {
	// Check if user exists
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return "", nil, ErrNameInUse
	}

	// Check if email exists
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return "", nil, ErrEmailInUse
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Login verifies the credentials and opens a new session. The same
// generic error covers unknown usernames and wrong passwords so the
// response does not reveal which one failed.
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout destroys the session for the given token.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

// Profile assembles the signed-in user's summary: identity plus how many
// jokes they have posted and rated.
func (s *authService) Profile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	jokesAdded, err := s.jokeRepo.CountByAuthor(userID)
	if err != nil {
		return nil, err
	}

	jokesRated, err := s.ratingRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileResponse{
		Username:   user.Username,
		Email:      user.Email,
		JokesAdded: jokesAdded,
		JokesRated: jokesRated,
	}, nil
}
