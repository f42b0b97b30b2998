package models

import "time"

// User represents a registered account.
// Password always holds a derived hash, never the raw value sent by the client.
type User struct {
	// ID is the opaque unique identifier assigned by the store on first save.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is unique across all users.
	Email string `json:"email"`

	// Password is the one-way hash of the user's password.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Phones are owned by the user and share its lifecycle.
	// Order is preserved from the registration request.
	Phones []Phone `json:"phones"`

	// CreatedAt is set once on first save and never changes afterwards.
	CreatedAt time.Time `json:"created"`

	// ModifiedAt is refreshed on every save.
	ModifiedAt time.Time `json:"modified"`

	// LastLogin is the time of the last successful sign-in (registration counts).
	LastLogin time.Time `json:"lastLogin"`

	// Token is the current session token. Empty until issued.
	Token string `json:"token,omitempty"`

	// IsActive defaults to true on first save.
	IsActive bool `json:"isActive"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// IsNew reports whether the user has not been persisted yet.
func (u User) IsNew() bool {
	return u.ID == ""
}
