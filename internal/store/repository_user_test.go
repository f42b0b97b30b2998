package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-signup/internal/logger"
	"github.com/MKhiriev/go-user-signup/internal/utils"
	"github.com/MKhiriev/go-user-signup/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     newPostgresDB(db, l),
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return fixedNow },
		logger: l,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
		},
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func newUser() models.User {
	return models.User{
		Name:      "Juan Pérez",
		Email:     "juan@test.com",
		Password:  "$2a$10$hash",
		LastLogin: fixedNow.Add(-time.Second),
		Phones: []models.Phone{
			{Number: "987654321", CityCode: "2", CountryCode: "56"},
			{Number: "1234567", CityCode: "9", CountryCode: "1"},
		},
	}
}

// ── ExistsByEmail ─────────────────────────────────────────────────────────────

func TestExistsByEmail(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    bool
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1 FROM users WHERE email = \$1`).
					WithArgs("juan@test.com").
					WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
			},
			want: true,
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1 FROM users`).
					WithArgs("juan@test.com").
					WillReturnError(sql.ErrNoRows)
			},
			want: false,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT 1 FROM users`).
					WithArgs("juan@test.com").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			// Act
			got, err := repo.ExistsByEmail(context.Background(), "juan@test.com")

			// Assert
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Save ──────────────────────────────────────────────────────────────────────

func TestSave_NewUser(t *testing.T) {
	// Arrange
	repo, mock := newTestUserRepo(t)
	user := newUser()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users \(id,name,email,password,created_at,modified_at,last_login,token,is_active\)`).
		WithArgs(sqlmock.AnyArg(), user.Name, user.Email, user.Password, fixedNow, fixedNow, user.LastLogin, sql.NullString{}, true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO phones \(user_id,position,number,city_code,country_code\) VALUES \(\$1,\$2,\$3,\$4,\$5\),\(\$6,\$7,\$8,\$9,\$10\)`).
		WithArgs(sqlmock.AnyArg(), 0, "987654321", "2", "56", sqlmock.AnyArg(), 1, "1234567", "9", "1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	saved, err := repo.Save(context.Background(), user)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, fixedNow, saved.CreatedAt)
	assert.Equal(t, fixedNow, saved.ModifiedAt)
	assert.Equal(t, user.LastLogin, saved.LastLogin)
	assert.True(t, saved.IsActive)
	assert.Equal(t, user.Phones, saved.Phones)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ExistingUserKeepsIDAndCreatedAt(t *testing.T) {
	// Arrange
	repo, mock := newTestUserRepo(t)
	user := newUser()
	user.ID = "0190f3a4-0000-7000-8000-000000000001"
	user.CreatedAt = fixedNow.Add(-time.Hour)
	user.IsActive = true
	user.Token = "a.b.c"

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users SET .* WHERE id = \$8`).
		WithArgs(user.Email, true, user.LastLogin, fixedNow, user.Name, user.Password, sql.NullString{String: "a.b.c", Valid: true}, user.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM phones WHERE user_id = \$1`).
		WithArgs(user.ID).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO phones`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	// Act
	saved, err := repo.Save(context.Background(), user)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID, saved.ID)
	assert.Equal(t, fixedNow.Add(-time.Hour), saved.CreatedAt)
	assert.Equal(t, fixedNow, saved.ModifiedAt)
	assert.Equal(t, "a.b.c", saved.Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UpdateUnknownUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := newUser()
	user.ID = "missing"

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), user)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), newUser())
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestSave_RetriesTransientErrors verifies that a serialization failure is
// retried and the second attempt commits.
func TestSave_RetriesTransientErrors(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO phones`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	saved, err := repo.Save(context.Background(), newUser())
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_GivesUpAfterMaxRetries(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	for range 3 {
		mock.ExpectBegin().WillReturnError(pgError(pgerrcode.ConnectionFailure))
	}

	_, err := repo.Save(context.Background(), newUser())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_NonRetryableErrorIsNotRetried(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), newUser())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_CommitError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO phones`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	_, err := repo.Save(context.Background(), newUser())
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── FindByID ──────────────────────────────────────────────────────────────────

func TestFindByID_Success(t *testing.T) {
	// Arrange
	repo, mock := newTestUserRepo(t)
	id := "0190f3a4-0000-7000-8000-000000000001"
	created := fixedNow.Add(-time.Hour)

	mock.ExpectQuery(`SELECT id, name, email, password, created_at, modified_at, last_login, token, is_active FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id, "Juan", "juan@test.com", "hash", created, fixedNow, fixedNow, "a.b.c", true))
	mock.ExpectQuery(`SELECT id, number, city_code, country_code FROM phones WHERE user_id = \$1 ORDER BY position`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(phoneColumns).
			AddRow(int64(1), "987654321", "2", "56").
			AddRow(int64(2), "1234567", "9", "1"))

	// Act
	user, err := repo.FindByID(context.Background(), id)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, "a.b.c", user.Token)
	assert.True(t, user.IsActive)
	require.Len(t, user.Phones, 2)
	assert.Equal(t, models.Phone{ID: 1, Number: "987654321", CityCode: "2", CountryCode: "56"}, user.Phones[0])
	assert.Equal(t, "1234567", user.Phones[1].Number)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByID_NullToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("id-1", "Juan", "juan@test.com", "hash", fixedNow, fixedNow, fixedNow, nil, true))
	mock.ExpectQuery(`FROM phones`).
		WillReturnRows(sqlmock.NewRows(phoneColumns))

	user, err := repo.FindByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Empty(t, user.Token)
	assert.Empty(t, user.Phones)
}

func TestFindByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users`).WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindByID_PhonesQueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(`FROM users`).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow("id-1", "Juan", "juan@test.com", "hash", fixedNow, fixedNow, fixedNow, nil, true))
	mock.ExpectQuery(`FROM phones`).WillReturnError(errors.New("boom"))

	_, err := repo.FindByID(context.Background(), "id-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
