package store

import (
	"database/sql"

	"github.com/MKhiriev/go-user-signup/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	usersTable  = models.User{}.TableName()
	phonesTable = models.Phone{}.TableName()

	userColumns = []string{
		"id",
		"name",
		"email",
		"password",
		"created_at",
		"modified_at",
		"last_login",
		"token",
		"is_active",
	}

	phoneColumns = []string{
		"id",
		"number",
		"city_code",
		"country_code",
	}
)

func (db *DB) existsByEmailQuery(email string) (string, []any, error) {
	return db.builder().
		Select("1").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder().
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID,
			user.Name,
			user.Email,
			user.Password,
			user.CreatedAt,
			user.ModifiedAt,
			user.LastLogin,
			nullString(user.Token),
			user.IsActive,
		).
		ToSql()
}

// updateUserQuery never touches id or created_at.
func (db *DB) updateUserQuery(user models.User) (string, []any, error) {
	return db.builder().
		Update(usersTable).
		SetMap(map[string]any{
			"name":        user.Name,
			"email":       user.Email,
			"password":    user.Password,
			"modified_at": user.ModifiedAt,
			"last_login":  user.LastLogin,
			"token":       nullString(user.Token),
			"is_active":   user.IsActive,
		}).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func (db *DB) deletePhonesQuery(userID string) (string, []any, error) {
	return db.builder().
		Delete(phonesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func (db *DB) insertPhonesQuery(userID string, phones []models.Phone) (string, []any, error) {
	query := db.builder().
		Insert(phonesTable).
		Columns("user_id", "position", "number", "city_code", "country_code")

	for i, phone := range phones {
		query = query.Values(userID, i, phone.Number, phone.CityCode, phone.CountryCode)
	}

	return query.ToSql()
}

func (db *DB) selectUserByIDQuery(id string) (string, []any, error) {
	return db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) selectPhonesQuery(userID string) (string, []any, error) {
	return db.builder().
		Select(phoneColumns...).
		From(phonesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("position").
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
