package query

import "strconv"

// Tuple is one row of a multi-column projection.
type Tuple struct {
	values []any
}

func NewTuple(values ...any) Tuple {
	return Tuple{values: values}
}

func (t Tuple) Len() int {
	return len(t.values)
}

func (t Tuple) Get(i int) any {
	if i < 0 || i >= len(t.values) {
		return nil
	}
	return t.values[i]
}

func (t Tuple) IsNull(i int) bool {
	return t.Get(i) == nil
}

// Int64 converts whatever the driver returned; NULL and unparsable values yield 0.
func (t Tuple) Int64(i int) int64 {
	switch v := t.Get(i).(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case []byte:
		n, _ := strconv.ParseInt(string(v), 10, 64)
		return n
	case string:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	default:
		return 0
	}
}

// Float64 also parses numeric values that pgx returns as text (AVG over integers).
func (t Tuple) Float64(i int) float64 {
	switch v := t.Get(i).(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	default:
		return 0
	}
}

func (t Tuple) String(i int) string {
	switch v := t.Get(i).(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func (t Tuple) StringPtr(i int) *string {
	if t.IsNull(i) {
		return nil
	}
	s := t.String(i)
	return &s
}

func (t Tuple) Int64Ptr(i int) *int64 {
	if t.IsNull(i) {
		return nil
	}
	n := t.Int64(i)
	return &n
}
