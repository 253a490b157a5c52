package validate

import (
	"net/url"
	"testing"

	"stayscape/internal/domain"
)

func TestPropertyListOptions_Defaults(t *testing.T) {
	opts, err := PropertyListOptions(url.Values{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if opts.Sort != "popularity" || opts.Order != "DESC" {
		t.Fatalf("default must be popularity descending, got %s %s", opts.Sort, opts.Order)
	}
	if opts.Limit != DefaultLimit || opts.Page != 1 {
		t.Fatalf("default pagination wrong: limit=%d page=%d", opts.Limit, opts.Page)
	}
	if opts.MinPrice != nil || opts.MaxPrice != nil || opts.Host != nil {
		t.Fatalf("filters should be absent by default")
	}
}

func TestPropertyListOptions_CoercesFilters(t *testing.T) {
	q := url.Values{}
	q.Set("minprice", "50")
	q.Set("maxprice", "120.5")
	q.Set("host", "3")
	q.Set("page", "2")
	q.Set("limit", "5")

	opts, err := PropertyListOptions(q)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if *opts.MinPrice != 50 || *opts.MaxPrice != 120.5 {
		t.Fatalf("price bounds wrong: %v %v", *opts.MinPrice, *opts.MaxPrice)
	}
	if *opts.Host != 3 || opts.Page != 2 || opts.Limit != 5 {
		t.Fatalf("host/page/limit wrong: %v %d %d", *opts.Host, opts.Page, opts.Limit)
	}
}

func TestPropertyListOptions_NonNumericIsTypeError(t *testing.T) {
	for _, param := range []string{"minprice", "maxprice", "host", "page", "limit"} {
		q := url.Values{}
		q.Set(param, "not_a_number")
		if _, err := PropertyListOptions(q); !domain.IsType(err) {
			t.Fatalf("%s: expected type error, got %v", param, err)
		}
	}
}

func TestPropertyListOptions_SortAllowList(t *testing.T) {
	for sort, col := range map[string]string{
		"name":            "name",
		"property_name":   "name",
		"price_per_night": "price_per_night",
		"popularity":      "popularity",
	} {
		q := url.Values{}
		q.Set("sort", sort)
		opts, err := PropertyListOptions(q)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", sort, err)
		}
		if opts.Sort != col {
			t.Fatalf("%s: mapped to %s, want %s", sort, opts.Sort, col)
		}
		if opts.Order != "ASC" {
			t.Fatalf("explicit sort should default to ascending, got %s", opts.Order)
		}
	}

	q := url.Values{}
	q.Set("sort", "description")
	_, err := PropertyListOptions(q)
	if !domain.IsEnum(err) {
		t.Fatalf("expected enum error, got %v", err)
	}
	if err.Error() != "Oops! Invalid either sort or order." {
		t.Fatalf("wrong message: %q", err.Error())
	}
}

func TestPropertyListOptions_OrderAllowList(t *testing.T) {
	q := url.Values{}
	q.Set("order", "sideways")
	if _, err := PropertyListOptions(q); !domain.IsEnum(err) {
		t.Fatalf("expected enum error, got %v", err)
	}

	q.Set("order", "asc")
	opts, err := PropertyListOptions(q)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if opts.Order != "ASC" {
		t.Fatalf("order not normalized: %s", opts.Order)
	}
}

func TestPropertyListOptions_ContradictoryBoundsAllowed(t *testing.T) {
	q := url.Values{}
	q.Set("minprice", "90")
	q.Set("maxprice", "10")
	if _, err := PropertyListOptions(q); err != nil {
		t.Fatalf("minprice > maxprice must not be rejected, got %v", err)
	}
}

func TestOptionalUserID(t *testing.T) {
	if id, err := OptionalUserID(url.Values{}); err != nil || id != nil {
		t.Fatalf("absent user_id should be nil, got %v %v", id, err)
	}
	q := url.Values{}
	q.Set("user_id", "9")
	id, err := OptionalUserID(q)
	if err != nil || id == nil || *id != 9 {
		t.Fatalf("user_id not coerced: %v %v", id, err)
	}
	q.Set("user_id", "nine")
	if _, err := OptionalUserID(q); !domain.IsType(err) {
		t.Fatalf("expected type error, got %v", err)
	}
}
