package store

import (
	"strconv"
	"time"
)

// Row is a single record returned by the remote store, keyed by column name.
// Values carry whatever type the driver produced: JSON decoding yields
// string/float64/bool/nil, the SQL driver yields Go scalars and time.Time.
type Row map[string]any

// Condition is a single-column equality filter.
type Condition struct {
	Column string
	Value  string
}

// Membership is a single-column IN-list filter.
type Membership struct {
	Column string
	Values []string
}

// Query describes one read against a named collection. A query with no
// filters returns all rows, bounded only by Limit when it is positive.
type Query struct {
	Collection string
	Columns    []string
	Eq         *Condition
	In         *Membership
	OrderBy    string
	Descending bool
	Limit      int
}

// Str returns the value of col rendered as a string. Numbers are formatted
// without an exponent, missing and null values become the empty string.
func (r Row) Str(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return ""
	}
}

// StrPtr is like Str but preserves nullness: it returns nil when the
// column is absent or null.
func (r Row) StrPtr(col string) *string {
	if r.IsNull(col) {
		return nil
	}
	s := r.Str(col)
	return &s
}

// Numeric coerces the value of col to a float64. Missing, null and
// non-numeric values become zero; numeric strings are parsed. Rows are
// never dropped and coercion never fails.
func (r Row) Numeric(col string) float64 {
	switch v := r[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// NumericPtr is like Numeric but preserves nullness: it returns nil when
// the column is absent or null.
func (r Row) NumericPtr(col string) *float64 {
	if r.IsNull(col) {
		return nil
	}
	f := r.Numeric(col)
	return &f
}

// IsNull reports whether col is absent or holds a null value.
func (r Row) IsNull(col string) bool {
	v, ok := r[col]
	return !ok || v == nil
}
