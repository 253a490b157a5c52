package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"

	"stayscape/internal/domain"
)

func TestClassify_ByErrorNumberOnly(t *testing.T) {
	cases := []struct {
		number uint16
		check  func(error) bool
		label  string
	}{
		{1452, domain.IsForeignKey, "fk insert"},
		{1451, domain.IsForeignKey, "fk delete"},
		{1048, domain.IsShape, "not null"},
		{1364, domain.IsShape, "no default"},
		{3819, domain.IsShape, "check violated"},
		{1366, domain.IsType, "incorrect value"},
		{1292, domain.IsType, "out of range"},
		{1265, domain.IsType, "truncated"},
	}

	for _, tc := range cases {
		// message text deliberately misleading: classification must go by number
		err := Classify(&mysql.MySQLError{Number: tc.number, Message: "foreign key constraint fails"})
		if !tc.check(err) {
			t.Fatalf("%s (%d): misclassified as %v", tc.label, tc.number, err)
		}
	}
}

func TestClassify_PassesUnknownThrough(t *testing.T) {
	plain := errors.New("connection reset")
	if got := Classify(plain); got != plain {
		t.Fatalf("unknown errors must pass through, got %v", got)
	}
	unknown := &mysql.MySQLError{Number: 1064, Message: "syntax"}
	if got := Classify(unknown); !errors.Is(got, error(unknown)) {
		t.Fatalf("unrecognized numbers must pass through, got %v", got)
	}
	if Classify(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}

func TestClassify_UnwrapsWrappedDriverErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("exec"), &mysql.MySQLError{Number: 1452})
	if !domain.IsForeignKey(Classify(wrapped)) {
		t.Fatalf("wrapped driver error not classified")
	}
}

func TestIsNoRows(t *testing.T) {
	if !IsNoRows(sql.ErrNoRows) {
		t.Fatalf("sql.ErrNoRows not detected")
	}
	if IsNoRows(errors.New("other")) {
		t.Fatalf("false positive")
	}
}
