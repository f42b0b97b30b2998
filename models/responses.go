package models

import "time"

// UserResponse is the creation summary returned with HTTP 201 after a
// successful registration.
type UserResponse struct {
	ID        string    `json:"id"`
	Created   time.Time `json:"created"`
	Modified  time.Time `json:"modified"`
	LastLogin time.Time `json:"lastLogin"`
	Token     string    `json:"token"`
	IsActive  bool      `json:"isActive"`
}

// NewUserResponse builds the creation summary for user.
func NewUserResponse(user User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Created:   user.CreatedAt,
		Modified:  user.ModifiedAt,
		LastLogin: user.LastLogin,
		Token:     user.Token,
		IsActive:  user.IsActive,
	}
}

// UserProfile is the public view of a user returned by GET /users/me.
// It never carries the password hash or the session token.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phones    []Phone   `json:"phones"`
	Created   time.Time `json:"created"`
	Modified  time.Time `json:"modified"`
	LastLogin time.Time `json:"lastLogin"`
	IsActive  bool      `json:"isActive"`
}

// NewUserProfile builds the public view of user.
func NewUserProfile(user User) UserProfile {
	return UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phones:    user.Phones,
		Created:   user.CreatedAt,
		Modified:  user.ModifiedAt,
		LastLogin: user.LastLogin,
		IsActive:  user.IsActive,
	}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"mensaje"`
}
