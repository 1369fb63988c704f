package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful login or registration
type AuthResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// ProfileResponse: the signed-in user's profile summary
type ProfileResponse struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	JokesAdded int64  `json:"jokes_added"`
	JokesRated int64  `json:"jokes_rated"`
}
