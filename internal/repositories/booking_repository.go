package repositories

import (
	"database/sql"

	intdb "stayscape/internal/db"
	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

// Insert creates a booking. Date validity is checked upstream; referential
// failures (unknown guest/property) surface as foreign-key errors, never as
// a malformed-payload response.
func (r BookingRepository) Insert(propertyID, guestID int64, checkIn, checkOut string) (models.Booking, error) {
	res, err := r.DB.Exec(`INSERT INTO bookings (property_id, guest_id, check_in_date, check_out_date)
		VALUES (?, ?, ?, ?)`, propertyID, guestID, checkIn, checkOut)
	if err != nil {
		return models.Booking{}, intdb.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	return r.fetchRow(id)
}

// Update patches the two dates with coalesce semantics; an absent date keeps
// the stored value. The read-back doubles as the existence check.
func (r BookingRepository) Update(bookingID int64, patch models.BookingPatch) (models.Booking, error) {
	_, err := r.DB.Exec(`UPDATE bookings SET
		check_in_date = COALESCE(?, check_in_date),
		check_out_date = COALESCE(?, check_out_date)
		WHERE booking_id = ?`,
		patch.CheckInDate, patch.CheckOutDate, bookingID)
	if err != nil {
		return models.Booking{}, intdb.Classify(err)
	}

	row, err := r.fetchRow(bookingID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, domain.NotFound("booking", "updated")
		}
		return models.Booking{}, err
	}
	return row, nil
}

func (r BookingRepository) Delete(bookingID int64) error {
	res, err := r.DB.Exec(`DELETE FROM bookings WHERE booking_id = ?`, bookingID)
	if err != nil {
		return intdb.Classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("booking", "deleted")
	}
	return nil
}

// ListForProperty is a nested list: a missing parent property is a
// not-found, an existing property with no bookings is an empty list. Both
// come out of the same query via the LEFT JOIN from properties.
func (r BookingRepository) ListForProperty(propertyID int64) ([]models.Booking, error) {
	rows, err := r.DB.Query(`SELECT b.booking_id,
		DATE_FORMAT(b.check_in_date, '%Y-%m-%d'),
		DATE_FORMAT(b.check_out_date, '%Y-%m-%d'),
		b.created_at
		FROM properties p
		LEFT JOIN bookings b ON b.property_id = p.property_id
		WHERE p.property_id = ?
		ORDER BY b.booking_id`, propertyID)
	if err != nil {
		return nil, intdb.Classify(err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	found := false
	for rows.Next() {
		found = true
		var (
			id       sql.NullInt64
			checkIn  sql.NullString
			checkOut sql.NullString
			created  sql.NullTime
		)
		if err := rows.Scan(&id, &checkIn, &checkOut, &created); err != nil {
			return nil, intdb.Classify(err)
		}
		if !id.Valid {
			continue
		}
		bookings = append(bookings, models.Booking{
			BookingID:    id.Int64,
			CheckInDate:  checkIn.String,
			CheckOutDate: checkOut.String,
			CreatedAt:    created.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, intdb.Classify(err)
	}
	if !found {
		return nil, domain.NotFoundError{}
	}
	return bookings, nil
}

// ListForUser lists a guest's bookings joined with property and host data,
// with the same missing-parent vs empty-list distinction.
func (r BookingRepository) ListForUser(guestID int64) ([]models.UserBooking, error) {
	rows, err := r.DB.Query(`SELECT b.booking_id,
		DATE_FORMAT(b.check_in_date, '%Y-%m-%d'),
		DATE_FORMAT(b.check_out_date, '%Y-%m-%d'),
		p.property_id, p.name AS property_name,
		CONCAT(h.first_name, ' ', h.surname) AS host,
		COALESCE((SELECT i.image_url FROM images i WHERE i.property_id = p.property_id ORDER BY i.image_id LIMIT 1), '') AS image
		FROM users u
		LEFT JOIN bookings b ON b.guest_id = u.user_id
		LEFT JOIN properties p ON p.property_id = b.property_id
		LEFT JOIN users h ON h.user_id = p.host_id
		WHERE u.user_id = ?
		ORDER BY b.booking_id`, guestID)
	if err != nil {
		return nil, intdb.Classify(err)
	}
	defer rows.Close()

	bookings := []models.UserBooking{}
	found := false
	for rows.Next() {
		found = true
		var (
			id           sql.NullInt64
			checkIn      sql.NullString
			checkOut     sql.NullString
			propertyID   sql.NullInt64
			propertyName sql.NullString
			host         sql.NullString
			image        sql.NullString
		)
		if err := rows.Scan(&id, &checkIn, &checkOut, &propertyID, &propertyName, &host, &image); err != nil {
			return nil, intdb.Classify(err)
		}
		if !id.Valid {
			continue
		}
		bookings = append(bookings, models.UserBooking{
			BookingID:    id.Int64,
			CheckInDate:  checkIn.String,
			CheckOutDate: checkOut.String,
			PropertyID:   propertyID.Int64,
			PropertyName: propertyName.String,
			Host:         host.String,
			Image:        image.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, intdb.Classify(err)
	}
	if !found {
		return nil, domain.NotFoundError{}
	}
	return bookings, nil
}

// Confirmation loads the joined data behind the confirmation PDF.
func (r BookingRepository) Confirmation(bookingID int64) (models.BookingConfirmation, error) {
	var c models.BookingConfirmation
	err := r.DB.QueryRow(`SELECT b.booking_id,
		DATE_FORMAT(b.check_in_date, '%Y-%m-%d'),
		DATE_FORMAT(b.check_out_date, '%Y-%m-%d'),
		p.name, p.location, p.price_per_night,
		CONCAT(h.first_name, ' ', h.surname) AS host,
		CONCAT(g.first_name, ' ', g.surname) AS guest
		FROM bookings b
		JOIN properties p ON p.property_id = b.property_id
		JOIN users h ON h.user_id = p.host_id
		JOIN users g ON g.user_id = b.guest_id
		WHERE b.booking_id = ?`, bookingID).
		Scan(&c.BookingID, &c.CheckInDate, &c.CheckOutDate, &c.PropertyName, &c.Location, &c.PricePerNight, &c.Host, &c.Guest)
	if err != nil {
		if intdb.IsNoRows(err) {
			return c, domain.NotFoundError{}
		}
		return c, intdb.Classify(err)
	}
	return c, nil
}

func (r BookingRepository) fetchRow(bookingID int64) (models.Booking, error) {
	var b models.Booking
	err := r.DB.QueryRow(`SELECT booking_id, property_id, guest_id,
		DATE_FORMAT(check_in_date, '%Y-%m-%d'),
		DATE_FORMAT(check_out_date, '%Y-%m-%d'),
		created_at
		FROM bookings WHERE booking_id = ?`, bookingID).
		Scan(&b.BookingID, &b.PropertyID, &b.GuestID, &b.CheckInDate, &b.CheckOutDate, &b.CreatedAt)
	if err != nil {
		if intdb.IsNoRows(err) {
			return b, domain.NotFoundError{}
		}
		return b, intdb.Classify(err)
	}
	return b, nil
}
