package repositories

import (
	"database/sql"
	"strings"

	intdb "stayscape/internal/db"
	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
	"stayscape/internal/validate"
)

type PropertyRepository struct {
	DB *sql.DB
}

const propertyListSelect = `SELECT p.property_id, p.name AS property_name, p.location,
	p.price_per_night, CONCAT(u.first_name, ' ', u.surname) AS host,
	COUNT(f.favourite_id) AS popularity
	FROM properties p
	JOIN users u ON p.host_id = u.user_id
	LEFT JOIN favourites f ON p.property_id = f.property_id`

const propertyListGroup = ` GROUP BY p.property_id, p.name, p.location, p.price_per_night, u.first_name, u.surname`

// List runs the filtered/sorted/paginated property query. Filters are
// conjunctive; every bound value goes through a placeholder. Zero rows is a
// domain not-found (top-level lists error, unlike nested ones).
func (r PropertyRepository) List(opts validate.ListOptions) ([]models.PropertySummary, error) {
	var where intdb.WhereBuilder

	if opts.MinPrice != nil {
		// exclusive lower bound, inclusive upper bound
		where.Add("p.price_per_night > ?", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		where.Add("p.price_per_night <= ?", *opts.MaxPrice)
	}
	if opts.Host != nil {
		where.Add("p.host_id = ?", *opts.Host)
	}
	if opts.PropertyType != nil {
		where.Add("p.property_type = ?", *opts.PropertyType)
	}
	if opts.Location != nil {
		// prefix match, and stored locations shorter than 5 chars never match
		where.Add("LOWER(p.location) LIKE CONCAT(LOWER(?), '%') AND CHAR_LENGTH(p.location) >= 5", *opts.Location)
	}

	query := propertyListSelect + where.Clause() + propertyListGroup +
		" ORDER BY " + orderClause(opts.Sort, opts.Order) +
		" LIMIT ? OFFSET ?"

	limit, offset := intdb.Page(opts.Page, opts.Limit)
	args := append(where.Args(), limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, intdb.Classify(err)
	}
	defer rows.Close()

	var out []models.PropertySummary
	for rows.Next() {
		var p models.PropertySummary
		if err := rows.Scan(&p.PropertyID, &p.PropertyName, &p.Location, &p.PricePerNight, &p.Host, &p.Popularity); err != nil {
			return nil, intdb.Classify(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, intdb.Classify(err)
	}
	if len(out) == 0 {
		return nil, domain.NotFoundError{}
	}
	return out, nil
}

// orderClause maps the validated sort key onto a real column. The input is
// already allow-listed upstream; the builder never interpolates user text.
func orderClause(sort, order string) string {
	col := "popularity"
	switch sort {
	case "name":
		col = "property_name"
	case "price_per_night":
		col = "p.price_per_night"
	}
	if order != "ASC" {
		order = "DESC"
	}
	return col + " " + order
}

// GetByID loads one property with its aggregates. The favourited flag is
// computed only when the requesting user id is known.
func (r PropertyRepository) GetByID(propertyID int64, userID *int64) (models.PropertyDetail, error) {
	cols := `SELECT p.property_id, p.name AS property_name, p.location, p.price_per_night,
		COALESCE(p.description, '') AS description,
		CONCAT(u.first_name, ' ', u.surname) AS host,
		COALESCE(u.avatar, '') AS host_avatar,
		(SELECT COUNT(*) FROM favourites f WHERE f.property_id = p.property_id) AS favourite_count,
		COALESCE((SELECT GROUP_CONCAT(i.image_url ORDER BY i.image_id SEPARATOR '|') FROM images i WHERE i.property_id = p.property_id), '') AS images`

	args := []any{}
	if userID != nil {
		cols += `,
		EXISTS(SELECT 1 FROM favourites f2 WHERE f2.property_id = p.property_id AND f2.guest_id = ?) AS favourited`
		args = append(args, *userID)
	}

	query := cols + `
		FROM properties p
		JOIN users u ON p.host_id = u.user_id
		WHERE p.property_id = ?`
	args = append(args, propertyID)

	var (
		detail     models.PropertyDetail
		images     string
		favourited bool
	)
	dest := []any{&detail.PropertyID, &detail.PropertyName, &detail.Location, &detail.PricePerNight,
		&detail.Description, &detail.Host, &detail.HostAvatar, &detail.FavouriteCount, &images}
	if userID != nil {
		dest = append(dest, &favourited)
	}

	if err := r.DB.QueryRow(query, args...).Scan(dest...); err != nil {
		if intdb.IsNoRows(err) {
			return detail, domain.NotFoundError{}
		}
		return detail, intdb.Classify(err)
	}

	detail.Images = splitImages(images)
	if userID != nil {
		detail.Favourited = &favourited
	}
	return detail, nil
}

func splitImages(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, "|")
}

// Insert creates a property and reads the persisted row back.
func (r PropertyRepository) Insert(name, propertyType, location string, pricePerNight float64, description string, hostID int64) (models.Property, error) {
	res, err := r.DB.Exec(`INSERT INTO properties (name, property_type, location, price_per_night, description, host_id)
		VALUES (?, ?, ?, ?, ?, ?)`,
		name, propertyType, location, pricePerNight, intdb.NullIfEmpty(description), hostID)
	if err != nil {
		return models.Property{}, intdb.Classify(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Property{}, err
	}
	return r.fetchRow(id)
}

// Update applies a coalesce-style partial update: nil patch fields keep the
// stored value. The follow-up read doubles as the existence check, since
// the driver reports zero affected rows for no-op updates too.
func (r PropertyRepository) Update(propertyID int64, patch models.PropertyPatch) (models.Property, error) {
	_, err := r.DB.Exec(`UPDATE properties SET
		name = COALESCE(?, name),
		property_type = COALESCE(?, property_type),
		location = COALESCE(?, location),
		price_per_night = COALESCE(?, price_per_night),
		description = COALESCE(?, description)
		WHERE property_id = ?`,
		patch.Name, patch.PropertyType, patch.Location, patch.PricePerNight, patch.Description, propertyID)
	if err != nil {
		return models.Property{}, intdb.Classify(err)
	}

	row, err := r.fetchRow(propertyID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Property{}, domain.NotFound("property", "updated")
		}
		return models.Property{}, err
	}
	return row, nil
}

// Delete removes a property by id; zero affected rows means it never existed.
func (r PropertyRepository) Delete(propertyID int64) error {
	res, err := r.DB.Exec(`DELETE FROM properties WHERE property_id = ?`, propertyID)
	if err != nil {
		return intdb.Classify(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFound("property", "deleted")
	}
	return nil
}

func (r PropertyRepository) fetchRow(propertyID int64) (models.Property, error) {
	var p models.Property
	err := r.DB.QueryRow(`SELECT property_id, host_id, name, location, property_type,
		price_per_night, COALESCE(description, '')
		FROM properties WHERE property_id = ?`, propertyID).
		Scan(&p.PropertyID, &p.HostID, &p.Name, &p.Location, &p.PropertyType, &p.PricePerNight, &p.Description)
	if err != nil {
		if intdb.IsNoRows(err) {
			return p, domain.NotFoundError{}
		}
		return p, intdb.Classify(err)
	}
	return p, nil
}
