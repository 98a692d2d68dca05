package gtp

import (
	"fmt"
	"net/url"
	"strconv"
)

// Query accumulates upstream REST query parameters. Nil-pointer setters omit
// the key entirely: absent means "no filter", never "filter on empty".
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// SetString adds a string filter. Nil or empty values are omitted.
func (q *Query) SetString(key string, v *string) *Query {
	if v != nil && *v != "" {
		q.values.Set(key, *v)
	}
	return q
}

// SetBool adds a boolean filter serialized as lowercase "true"/"false".
func (q *Query) SetBool(key string, v *bool) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatBool(*v))
	}
	return q
}

// SetInt adds an integer filter.
func (q *Query) SetInt(key string, v *int) *Query {
	if v != nil {
		q.values.Set(key, strconv.Itoa(*v))
	}
	return q
}

// SetFloat adds a numeric filter. Values are rendered with minimal digits so
// the upstream sees "100" rather than "100.000000".
func (q *Query) SetFloat(key string, v *float64) *Query {
	if v != nil {
		q.values.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
	return q
}

// SetRange adds the upstream greater-than/less-than pair for a numeric field
// using the <field>Gt / <field>Lt suffix convention. Either or both bounds may
// be set; supplying both expresses a closed interval.
func (q *Query) SetRange(field string, gt, lt *float64) *Query {
	q.SetFloat(field+"Gt", gt)
	q.SetFloat(field+"Lt", lt)
	return q
}

// Values returns the accumulated parameters.
func (q *Query) Values() url.Values {
	return q.values
}

// Encode returns the URL-encoded query string.
func (q *Query) Encode() string {
	return q.values.Encode()
}

// PathID validates a path-segment identifier. Identifiers are substituted into
// the endpoint path, never passed as query parameters, and must be positive
// integers accepted as-is by the upstream.
func PathID(name string, id int) (string, error) {
	if id <= 0 {
		return "", &InvalidParameterError{Param: name, Reason: fmt.Sprintf("must be a positive integer, got %d", id)}
	}
	return strconv.Itoa(id), nil
}
