package repositories

import (
	"database/sql"

	intdb "stayscape/internal/db"
	"stayscape/internal/domain/models"
)

type PropertyTypeRepository struct {
	DB *sql.DB
}

func (r PropertyTypeRepository) List() ([]models.PropertyType, error) {
	rows, err := r.DB.Query(`SELECT property_type, description FROM property_types ORDER BY property_type`)
	if err != nil {
		return nil, intdb.Classify(err)
	}
	defer rows.Close()

	types := []models.PropertyType{}
	for rows.Next() {
		var t models.PropertyType
		if err := rows.Scan(&t.PropertyType, &t.Description); err != nil {
			return nil, intdb.Classify(err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, intdb.Classify(err)
	}
	return types, nil
}
