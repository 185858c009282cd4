package entity

// RelationalRow maps column labels to scalar values (string, int64, float64, bool or nil)
// and remembers the order in which columns were set.
type RelationalRow struct {
	columns []string
	values  map[string]any
}

func NewRelationalRow() RelationalRow {
	return RelationalRow{values: make(map[string]any)}
}

// Set stores value under column. Setting an existing column keeps its position.
func (r *RelationalRow) Set(column string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[column]; !exists {
		r.columns = append(r.columns, column)
	}
	r.values[column] = value
}

// Get returns the value for column. A stored null is (nil, true); a missing column is (nil, false).
func (r RelationalRow) Get(column string) (any, bool) {
	value, ok := r.values[column]
	return value, ok
}

// Columns returns the column labels in insertion order.
func (r RelationalRow) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

func (r RelationalRow) Len() int {
	return len(r.columns)
}
