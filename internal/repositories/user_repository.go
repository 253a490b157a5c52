package repositories

import (
	"database/sql"

	intdb "stayscape/internal/db"
	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userSelect = `SELECT user_id, first_name, surname, email,
	COALESCE(phone_number, ''), role, COALESCE(avatar, ''), created_at
	FROM users WHERE user_id = ?`

func (r UserRepository) GetByID(userID int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(userSelect, userID).
		Scan(&u.UserID, &u.FirstName, &u.Surname, &u.Email, &u.PhoneNumber, &u.Role, &u.Avatar, &u.CreatedAt)
	if err != nil {
		if intdb.IsNoRows(err) {
			return u, domain.NotFoundError{}
		}
		return u, intdb.Classify(err)
	}
	return u, nil
}

func (r UserRepository) Insert(firstName, surname, email, phoneNumber, role, avatar string) (models.User, error) {
	if role == "" {
		role = "guest"
	}
	res, err := r.DB.Exec(`INSERT INTO users (first_name, surname, email, phone_number, role, avatar)
		VALUES (?, ?, ?, ?, ?, ?)`,
		firstName, surname, email, intdb.NullIfEmpty(phoneNumber), role, intdb.NullIfEmpty(avatar))
	if err != nil {
		return models.User{}, intdb.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(id)
}

// Update is a coalesce-style partial update; absent fields keep stored values.
func (r UserRepository) Update(userID int64, patch models.UserPatch) (models.User, error) {
	_, err := r.DB.Exec(`UPDATE users SET
		first_name = COALESCE(?, first_name),
		surname = COALESCE(?, surname),
		email = COALESCE(?, email),
		phone_number = COALESCE(?, phone_number),
		role = COALESCE(?, role),
		avatar = COALESCE(?, avatar)
		WHERE user_id = ?`,
		patch.FirstName, patch.Surname, patch.Email, patch.PhoneNumber, patch.Role, patch.Avatar, userID)
	if err != nil {
		return models.User{}, intdb.Classify(err)
	}

	u, err := r.GetByID(userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.NotFound("user", "updated")
		}
		return models.User{}, err
	}
	return u, nil
}
