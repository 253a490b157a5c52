package repositories

import (
	"database/sql"

	intdb "stayscape/internal/db"
	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

// ListForProperty returns a property's reviews plus the derived average
// rating. The query is driven from the properties side so one round-trip
// distinguishes "no such property" (zero rows) from "no reviews yet"
// (one row with NULL review columns).
func (r ReviewRepository) ListForProperty(propertyID int64) ([]models.Review, *float64, error) {
	rows, err := r.DB.Query(`SELECT rv.review_id, rv.rating, rv.comment, rv.created_at,
		CONCAT(g.first_name, ' ', g.surname) AS guest,
		COALESCE(g.avatar, '') AS guest_avatar,
		(SELECT AVG(rating) FROM reviews WHERE property_id = p.property_id) AS average_rating
		FROM properties p
		LEFT JOIN reviews rv ON rv.property_id = p.property_id
		LEFT JOIN users g ON rv.guest_id = g.user_id
		WHERE p.property_id = ?
		ORDER BY rv.created_at DESC`, propertyID)
	if err != nil {
		return nil, nil, intdb.Classify(err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	var average *float64
	found := false

	for rows.Next() {
		found = true
		var (
			id      sql.NullInt64
			rating  sql.NullInt64
			comment sql.NullString
			created sql.NullTime
			guest   sql.NullString
			avatar  sql.NullString
			avg     sql.NullFloat64
		)
		if err := rows.Scan(&id, &rating, &comment, &created, &guest, &avatar, &avg); err != nil {
			return nil, nil, intdb.Classify(err)
		}
		if avg.Valid {
			average = &avg.Float64
		}
		if !id.Valid {
			continue // property exists, no reviews
		}
		reviews = append(reviews, models.Review{
			ReviewID:    id.Int64,
			Rating:      rating.Int64,
			Comment:     comment.String,
			CreatedAt:   created.Time,
			Guest:       guest.String,
			GuestAvatar: avatar.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, nil, intdb.Classify(err)
	}
	if !found {
		return nil, nil, domain.NotFoundError{}
	}
	return reviews, average, nil
}

// Insert creates a review for a property and reads the persisted row back.
func (r ReviewRepository) Insert(propertyID, guestID, rating int64, comment string) (models.Review, error) {
	res, err := r.DB.Exec(`INSERT INTO reviews (property_id, guest_id, rating, comment)
		VALUES (?, ?, ?, ?)`, propertyID, guestID, rating, intdb.NullIfEmpty(comment))
	if err != nil {
		return models.Review{}, intdb.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Review{}, err
	}

	var rv models.Review
	err = r.DB.QueryRow(`SELECT review_id, property_id, guest_id, rating, COALESCE(comment, ''), created_at
		FROM reviews WHERE review_id = ?`, id).
		Scan(&rv.ReviewID, &rv.PropertyID, &rv.GuestID, &rv.Rating, &rv.Comment, &rv.CreatedAt)
	if err != nil {
		return rv, intdb.Classify(err)
	}
	return rv, nil
}

func (r ReviewRepository) Delete(reviewID int64) error {
	res, err := r.DB.Exec(`DELETE FROM reviews WHERE review_id = ?`, reviewID)
	if err != nil {
		return intdb.Classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("property's review", "deleted")
	}
	return nil
}
