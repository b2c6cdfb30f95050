package domain

// ColumnKey identifies one column of a ResultMatrix. For event queries the
// tuple is the dimension values, followed by the event name when more than
// one event was requested. For funnel queries it is the step ordinal
// followed by the dimension values.
type ColumnKey []string

// ResultMatrix is a wide, time-indexed table: one row per time bucket, one
// column per observed dimension combination. Cells absent from the query
// result are zero-filled.
type ResultMatrix struct {
	IndexName string
	Index     []string    // bucket labels, ascending, deduplicated
	Columns   []ColumnKey // ascending by key tuple
	Values    [][]float64 // Values[i][j] belongs to Index[i], Columns[j]
}

// Column returns the position of key, or -1 when absent.
func (m *ResultMatrix) Column(key ...string) int {
	for j, col := range m.Columns {
		if len(col) != len(key) {
			continue
		}
		match := true
		for i := range col {
			if col[i] != key[i] {
				match = false
				break
			}
		}
		if match {
			return j
		}
	}
	return -1
}
