package api

import (
	"net/url"
	"strconv"
)

// Query builds query strings that omit absent optional values.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// String adds key when v is non-empty.
func (q *Query) String(key, v string) *Query {
	if v != "" {
		q.values.Set(key, v)
	}
	return q
}

func (q *Query) StringPtr(key string, v *string) *Query {
	if v != nil {
		q.String(key, *v)
	}
	return q
}

// Int always adds key; use for required values like pageNumber.
func (q *Query) Int(key string, v int) *Query {
	q.values.Set(key, strconv.Itoa(v))
	return q
}

func (q *Query) IntPtr(key string, v *int) *Query {
	if v != nil {
		q.Int(key, *v)
	}
	return q
}

func (q *Query) FloatPtr(key string, v *float64) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
	return q
}

func (q *Query) BoolPtr(key string, v *bool) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatBool(*v))
	}
	return q
}

func (q *Query) Values() url.Values {
	if q == nil {
		return nil
	}
	return q.values
}

func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}
