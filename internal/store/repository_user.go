package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/MKhiriev/go-user-signup/models"
	"github.com/sethvargo/go-retry"
)

const (
	maxSaveRetries   = 3
	saveRetryBackoff = 50 * time.Millisecond
)

// userRepository is the database/sql implementation of [UserRepository],
// shared by the PostgreSQL and SQLite backends.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db      *DB
	ids     *utils.UUIDGenerator
	now     func() time.Time
	backoff func() retry.Backoff
	logger  *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: logger,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(maxSaveRetries, retry.NewExponential(saveRetryBackoff))
		},
	}
}

// ExistsByEmail implements [UserRepository].
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.existsByEmailQuery(email)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.ExistsByEmail").Msg("error checking email existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// Save implements [UserRepository]. Both the insert and the update run in a
// single transaction. Retryable driver failures are retried with
// exponential backoff; unique violations are reported as
// [ErrEmailAlreadyExists].
func (r *userRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var saved models.User
	err := retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		var err error
		saved, err = r.save(ctx, user)
		if err == nil {
			return nil
		}

		if r.db.classify(err) == Retryable {
			log.Warn().Err(err).Str("func", "*userRepository.Save").Msg("retryable error while saving user")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Save").Str("id", user.ID).Msg("error saving user")
		if r.db.classify(err) == Conflict {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, err
	}

	return saved, nil
}

func (r *userRepository) save(ctx context.Context, user models.User) (models.User, error) {
	now := r.now().UTC()
	isNew := user.IsNew()
	if isNew {
		user.ID = r.ids.Generate()
		user.CreatedAt = now
		user.IsActive = true
	}
	user.ModifiedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if isNew {
		err = r.insertUser(ctx, tx, user)
	} else {
		err = r.updateUser(ctx, tx, user)
	}
	if err != nil {
		return models.User{}, err
	}

	if err = r.insertPhones(ctx, tx, user); err != nil {
		return models.User{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

func (r *userRepository) insertUser(ctx context.Context, tx *sql.Tx, user models.User) error {
	query, args, err := r.db.insertUserQuery(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// updateUser rewrites the user row and drops its phones, which are
// re-inserted afterwards.
func (r *userRepository) updateUser(ctx context.Context, tx *sql.Tx, user models.User) error {
	query, args, err := r.db.updateUserQuery(user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	query, args, err = r.db.deletePhonesQuery(user.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *userRepository) insertPhones(ctx context.Context, tx *sql.Tx, user models.User) error {
	if len(user.Phones) == 0 {
		return nil
	}

	query, args, err := r.db.insertPhonesQuery(user.ID, user.Phones)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindByID implements [UserRepository].
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserByIDQuery(id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	var token sql.NullString
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.ModifiedAt,
		&user.LastLogin,
		&token,
		&user.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.Token = token.String

	phones, err := r.findPhones(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error loading phones")
		return models.User{}, err
	}
	user.Phones = phones

	return user, nil
}

func (r *userRepository) findPhones(ctx context.Context, userID string) ([]models.Phone, error) {
	query, args, err := r.db.selectPhonesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	phones := make([]models.Phone, 0)
	for rows.Next() {
		var phone models.Phone
		if err := rows.Scan(&phone.ID, &phone.Number, &phone.CityCode, &phone.CountryCode); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		phones = append(phones, phone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return phones, nil
}
