package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"stayscape/internal/domain"
)

func newFavouriteMock(t *testing.T) (*sqlmock.Sqlmock, FavouriteRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &mock, FavouriteRepository{DB: db}
}

func TestFavouriteInsert(t *testing.T) {
	mock, repo := newFavouriteMock(t)

	(*mock).ExpectExec(`INSERT INTO favourites`).
		WithArgs(int64(2), int64(5)).
		WillReturnResult(sqlmock.NewResult(31, 1))

	f, err := repo.Insert(2, 5)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if f.FavouriteID != 31 || f.GuestID != 2 || f.PropertyID != 5 {
		t.Fatalf("unexpected favourite: %+v", f)
	}
}

func TestFavouriteInsert_DanglingReference(t *testing.T) {
	mock, repo := newFavouriteMock(t)

	(*mock).ExpectExec(`INSERT INTO favourites`).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "constraint fails"})

	if _, err := repo.Insert(9999, 5); !domain.IsForeignKey(err) {
		t.Fatalf("expected foreign key error, got %v", err)
	}
}

func TestFavouriteDelete_ZeroRows(t *testing.T) {
	mock, repo := newFavouriteMock(t)

	(*mock).ExpectExec(`DELETE FROM favourites WHERE favourite_id = \?`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(404)
	if err == nil || err.Error() != "property's favourite doesn't exist, no record deleted." {
		t.Fatalf("wrong error: %v", err)
	}
}

func TestFavouriteListForUser_EmptyVersusMissing(t *testing.T) {
	mock, repo := newFavouriteMock(t)

	rows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"favourite_id", "property_id", "property_name", "location", "price_per_night", "host", "image"})
	}

	(*mock).ExpectQuery(`(?s)FROM users u.*LEFT JOIN favourites f`).
		WithArgs(int64(404)).
		WillReturnRows(rows())
	if _, err := repo.ListForUser(404); !domain.IsNotFound(err) {
		t.Fatalf("missing user: expected not found, got %v", err)
	}

	(*mock).ExpectQuery(`(?s)FROM users u.*LEFT JOIN favourites f`).
		WithArgs(int64(2)).
		WillReturnRows(rows().AddRow(nil, nil, nil, nil, nil, nil, nil))
	favourites, err := repo.ListForUser(2)
	if err != nil {
		t.Fatalf("existing user: expected no error, got %v", err)
	}
	if favourites == nil || len(favourites) != 0 {
		t.Fatalf("expected empty slice, got %v", favourites)
	}
}
