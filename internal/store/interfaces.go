// Package store implements persistence of registered users and their phones.
//
// Three backends satisfy [UserRepository]: PostgreSQL (pgx stdlib driver),
// SQLite (go-sqlite3) and a process-local in-memory map. [NewStorages]
// selects one from the storage configuration.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-user-signup/models"
)

// UserRepository is the persistence collaborator of the registration flow.
type UserRepository interface {
	// ExistsByEmail reports whether a user with the given email is stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Save upserts user keyed by ID.
	//
	// On first save (empty ID) it assigns the ID, sets CreatedAt and
	// ModifiedAt to now and IsActive to true. On later saves it refreshes
	// ModifiedAt only and replaces the stored phones with user.Phones.
	// Every other field is stored as given. The stored user is returned.
	Save(ctx context.Context, user models.User) (models.User, error)

	// FindByID returns the user with its phones in insertion order, or
	// [ErrNoUserWasFound].
	FindByID(ctx context.Context, id string) (models.User, error)
}

// ErrorClassificator decides how a failed driver call should be handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
