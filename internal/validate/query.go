package validate

import (
	"net/url"
	"strconv"
	"strings"

	"stayscape/internal/domain"
)

const DefaultLimit = 10

// ListOptions is the coerced filter/sort/pagination bag for property lists.
// Pointer fields mean "filter not requested".
type ListOptions struct {
	MinPrice     *float64
	MaxPrice     *float64
	Host         *int64
	PropertyType *string
	Location     *string
	Sort         string // name | price_per_night | popularity
	Order        string // ASC | DESC
	Limit        int64
	Page         int64
}

var sortColumns = map[string]string{
	"name":            "name",
	"property_name":   "name",
	"price_per_night": "price_per_night",
	"popularity":      "popularity",
}

// PropertyListOptions coerces the query string. Numeric params that fail to
// parse are type errors; sort/order outside the allow-list get their own
// error so the builder never sees an unsafe column name. Contradictory price
// bounds are allowed through and simply match nothing.
func PropertyListOptions(q url.Values) (ListOptions, error) {
	opts := ListOptions{
		Sort:  "popularity",
		Order: "DESC",
		Limit: DefaultLimit,
		Page:  1,
	}

	var err error
	if opts.MinPrice, err = floatParam(q, "minprice"); err != nil {
		return opts, err
	}
	if opts.MaxPrice, err = floatParam(q, "maxprice"); err != nil {
		return opts, err
	}
	if opts.Host, err = intParam(q, "host"); err != nil {
		return opts, err
	}
	if v := strings.TrimSpace(q.Get("property_type")); v != "" {
		opts.PropertyType = &v
	}
	if v := strings.TrimSpace(q.Get("location")); v != "" {
		opts.Location = &v
	}

	if sort := strings.TrimSpace(q.Get("sort")); sort != "" {
		col, ok := sortColumns[sort]
		if !ok {
			return opts, domain.EnumError{Param: "sort", Value: sort}
		}
		opts.Sort = col
		// explicit sort without an order is ascending
		opts.Order = "ASC"
	}
	if order := strings.TrimSpace(q.Get("order")); order != "" {
		switch strings.ToLower(order) {
		case "asc":
			opts.Order = "ASC"
		case "desc":
			opts.Order = "DESC"
		default:
			return opts, domain.EnumError{Param: "order", Value: order}
		}
	}

	if page, err := intParam(q, "page"); err != nil {
		return opts, err
	} else if page != nil {
		if *page < 1 {
			return opts, domain.TypeError{Field: "page"}
		}
		opts.Page = *page
	}
	if limit, err := intParam(q, "limit"); err != nil {
		return opts, err
	} else if limit != nil {
		if *limit < 1 {
			return opts, domain.TypeError{Field: "limit"}
		}
		opts.Limit = *limit
	}

	return opts, nil
}

// OptionalUserID coerces the user_id query param gating the favourited flag.
func OptionalUserID(q url.Values) (*int64, error) {
	return intParam(q, "user_id")
}

func floatParam(q url.Values, name string) (*float64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, domain.TypeError{Field: name, Err: err}
	}
	return &f, nil
}

func intParam(q url.Values, name string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.TypeError{Field: name, Err: err}
	}
	return &n, nil
}
