package repositories

import (
	"database/sql"

	intdb "stayscape/internal/db"
	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
)

type FavouriteRepository struct {
	DB *sql.DB
}

// Insert records a guest favouriting a property. A dangling guest or
// property comes back as a foreign-key error, distinct from a bad payload.
func (r FavouriteRepository) Insert(guestID, propertyID int64) (models.Favourite, error) {
	res, err := r.DB.Exec(`INSERT INTO favourites (guest_id, property_id) VALUES (?, ?)`,
		guestID, propertyID)
	if err != nil {
		return models.Favourite{}, intdb.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Favourite{}, err
	}
	return models.Favourite{FavouriteID: id, GuestID: guestID, PropertyID: propertyID}, nil
}

func (r FavouriteRepository) Delete(favouriteID int64) error {
	res, err := r.DB.Exec(`DELETE FROM favourites WHERE favourite_id = ?`, favouriteID)
	if err != nil {
		return intdb.Classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("property's favourite", "deleted")
	}
	return nil
}

// ListForUser returns the properties a user favourited, newest first.
// Zero rows means the user doesn't exist; a user with no favourites still
// yields one row (NULL favourite columns) via the LEFT JOIN.
func (r FavouriteRepository) ListForUser(userID int64) ([]models.FavouriteProperty, error) {
	rows, err := r.DB.Query(`SELECT f.favourite_id, p.property_id, p.name AS property_name,
		p.location, p.price_per_night,
		CONCAT(h.first_name, ' ', h.surname) AS host,
		COALESCE((SELECT i.image_url FROM images i WHERE i.property_id = p.property_id ORDER BY i.image_id LIMIT 1), '') AS image
		FROM users u
		LEFT JOIN favourites f ON f.guest_id = u.user_id
		LEFT JOIN properties p ON p.property_id = f.property_id
		LEFT JOIN users h ON h.user_id = p.host_id
		WHERE u.user_id = ?
		ORDER BY f.favourite_id DESC`, userID)
	if err != nil {
		return nil, intdb.Classify(err)
	}
	defer rows.Close()

	favourites := []models.FavouriteProperty{}
	found := false
	for rows.Next() {
		found = true
		var (
			id           sql.NullInt64
			propertyID   sql.NullInt64
			propertyName sql.NullString
			location     sql.NullString
			price        sql.NullString
			host         sql.NullString
			image        sql.NullString
		)
		if err := rows.Scan(&id, &propertyID, &propertyName, &location, &price, &host, &image); err != nil {
			return nil, intdb.Classify(err)
		}
		if !id.Valid {
			continue
		}
		favourites = append(favourites, models.FavouriteProperty{
			FavouriteID:   id.Int64,
			PropertyID:    propertyID.Int64,
			PropertyName:  propertyName.String,
			Location:      location.String,
			PricePerNight: price.String,
			Host:          host.String,
			Image:         image.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, intdb.Classify(err)
	}
	if !found {
		return nil, domain.NotFoundError{}
	}
	return favourites, nil
}
