package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"stayscape/internal/domain"
	"stayscape/internal/domain/models"
	"stayscape/internal/validate"
)

func newMock(t *testing.T) (*sqlmock.Sqlmock, PropertyRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &mock, PropertyRepository{DB: db}
}

func propertyListRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"property_id", "property_name", "location", "price_per_night", "host", "popularity"})
}

func TestPropertyList_PriceBoundsAndPagination(t *testing.T) {
	mock, repo := newMock(t)

	min, max := 50.0, 120.0
	opts := validate.ListOptions{MinPrice: &min, MaxPrice: &max, Sort: "popularity", Order: "DESC", Limit: 5, Page: 3}

	(*mock).ExpectQuery(`(?s)SELECT p\.property_id.*WHERE p\.price_per_night > \? AND p\.price_per_night <= \?.*GROUP BY p\.property_id.*ORDER BY popularity DESC.*LIMIT \? OFFSET \?`).
		WithArgs(50.0, 120.0, int64(5), int64(10)).
		WillReturnRows(propertyListRows().AddRow(1, "Seaside Studio Getaway", "Cornwall, UK", "95.00", "Emma Davis", 3))

	properties, err := repo.List(opts)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(properties) != 1 || properties[0].PricePerNight != "95.00" {
		t.Fatalf("unexpected result: %+v", properties)
	}
	if err := (*mock).ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPropertyList_LocationPrefixWithLengthGuard(t *testing.T) {
	mock, repo := newMock(t)

	loc := "Corn"
	opts := validate.ListOptions{Location: &loc, Sort: "popularity", Order: "DESC", Limit: 10, Page: 1}

	(*mock).ExpectQuery(`(?s)LOWER\(p\.location\) LIKE CONCAT\(LOWER\(\?\), '%'\) AND CHAR_LENGTH\(p\.location\) >= 5`).
		WithArgs("Corn", int64(10), int64(0)).
		WillReturnRows(propertyListRows().AddRow(3, "Seaside Studio Getaway", "Cornwall, UK", "95.00", "Emma Davis", 2))

	if _, err := repo.List(opts); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestPropertyList_ZeroRowsIsNotFound(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectQuery(`(?s)SELECT p\.property_id`).WillReturnRows(propertyListRows())

	_, err := repo.List(validate.ListOptions{Sort: "popularity", Order: "DESC", Limit: 10, Page: 1})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err.Error() != "No record found." {
		t.Fatalf("wrong message: %q", err.Error())
	}
}

func TestPropertyList_SortByNameAscending(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectQuery(`(?s)ORDER BY property_name ASC`).
		WithArgs(int64(10), int64(0)).
		WillReturnRows(propertyListRows().AddRow(2, "Cosy Family House", "Manchester, UK", "150.00", "Alice Johnson", 1))

	if _, err := repo.List(validate.ListOptions{Sort: "name", Order: "ASC", Limit: 10, Page: 1}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestPropertyGetByID_FavouritedOnlyWithUser(t *testing.T) {
	mock, repo := newMock(t)

	userID := int64(9)
	(*mock).ExpectQuery(`(?s)favourited.*WHERE p\.property_id = \?`).
		WithArgs(int64(9), int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"property_id", "property_name", "location", "price_per_night", "description",
			"host", "host_avatar", "favourite_count", "images", "favourited",
		}).AddRow(5, "Seaside Studio Getaway", "Cornwall, UK", "95.00", "desc", "Emma Davis", "", 4, "https://a.jpg|https://b.jpg", true))

	detail, err := repo.GetByID(5, &userID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.Favourited == nil || !*detail.Favourited {
		t.Fatalf("favourited flag missing: %+v", detail.Favourited)
	}
	if len(detail.Images) != 2 {
		t.Fatalf("images not split: %v", detail.Images)
	}
}

func TestPropertyGetByID_NoUserOmitsFavourited(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectQuery(`(?s)WHERE p\.property_id = \?`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{
			"property_id", "property_name", "location", "price_per_night", "description",
			"host", "host_avatar", "favourite_count", "images",
		}).AddRow(5, "Seaside Studio Getaway", "Cornwall, UK", "95.00", "desc", "Emma Davis", "", 4, ""))

	detail, err := repo.GetByID(5, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if detail.Favourited != nil {
		t.Fatalf("favourited must be omitted without a user id")
	}
	if len(detail.Images) != 0 {
		t.Fatalf("expected empty image list, got %v", detail.Images)
	}
}

func TestPropertyGetByID_Missing(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectQuery(`(?s)WHERE p\.property_id = \?`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"property_id", "property_name", "location", "price_per_night", "description",
			"host", "host_avatar", "favourite_count", "images",
		}))

	_, err := repo.GetByID(404, nil)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPropertyInsert_ReadsRowBack(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectExec(`INSERT INTO properties`).
		WithArgs("Seaside Studio", "Studio", "Cornwall, UK", 95.0, "Description of Seaside Studio Getaway.", int64(1)).
		WillReturnResult(sqlmock.NewResult(7, 1))
	(*mock).ExpectQuery(`(?s)SELECT property_id, host_id, name.*WHERE property_id = \?`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id", "host_id", "name", "location", "property_type", "price_per_night", "description"}).
			AddRow(7, 1, "Seaside Studio", "Cornwall, UK", "Studio", "95", "Description of Seaside Studio Getaway."))

	property, err := repo.Insert("Seaside Studio", "Studio", "Cornwall, UK", 95.0, "Description of Seaside Studio Getaway.", 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if property.PricePerNight != "95" {
		t.Fatalf("price must stay string-typed, got %q", property.PricePerNight)
	}
	if property.HostID != 1 || property.PropertyID != 7 {
		t.Fatalf("ids wrong: %+v", property)
	}
}

func TestPropertyInsert_DanglingForeignKey(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectExec(`INSERT INTO properties`).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"})

	_, err := repo.Insert("x", "Studio", "Cornwall, UK", 95.0, "", 9999)
	if !domain.IsForeignKey(err) {
		t.Fatalf("expected foreign key error, got %v", err)
	}
	if err.Error() != "foreign key reference not found." {
		t.Fatalf("wrong message: %q", err.Error())
	}
}

func TestPropertyUpdate_CoalescesAbsentFields(t *testing.T) {
	mock, repo := newMock(t)

	loc := "Cornwall, UK"
	(*mock).ExpectExec(`(?s)UPDATE properties SET.*name = COALESCE\(\?, name\)`).
		WithArgs(nil, nil, "Cornwall, UK", nil, nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	(*mock).ExpectQuery(`(?s)SELECT property_id, host_id, name`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id", "host_id", "name", "location", "property_type", "price_per_night", "description"}).
			AddRow(7, 1, "Seaside Studio", "Cornwall, UK", "Studio", "95.00", "unchanged"))

	property, err := repo.Update(7, models.PropertyPatch{Location: &loc})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if property.Name != "Seaside Studio" || property.Description != "unchanged" {
		t.Fatalf("untouched fields must be preserved: %+v", property)
	}
}

func TestPropertyUpdate_Missing(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectExec(`UPDATE properties SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	(*mock).ExpectQuery(`(?s)SELECT property_id, host_id, name`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"property_id", "host_id", "name", "location", "property_type", "price_per_night", "description"}))

	loc := "Nowhere, UK"
	_, err := repo.Update(404, models.PropertyPatch{Location: &loc})
	if err == nil || err.Error() != "property doesn't exist, no record updated." {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestPropertyDelete_ZeroRowsIsNotFound(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectExec(`DELETE FROM properties WHERE property_id = \?`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(404)
	if err == nil || err.Error() != "property doesn't exist, no record deleted." {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestPropertyDelete_ReferencedRowIsForeignKeyError(t *testing.T) {
	mock, repo := newMock(t)

	(*mock).ExpectExec(`DELETE FROM properties`).
		WillReturnError(&mysql.MySQLError{Number: 1451, Message: "referenced"})

	if err := repo.Delete(1); !domain.IsForeignKey(err) {
		t.Fatalf("expected foreign key error, got %v", err)
	}
}
