// Package reshape pivots flat query rows into wide, time-indexed result
// matrices with deterministic column order and zero fill.
package reshape

import (
	"slices"
	"strconv"
	"strings"

	"analytics-query-service/internal/analytics/core/domain"
)

// keySep joins column key tuples for map lookups. NUL never occurs in
// bucket labels or dimension values.
const keySep = "\x00"

// PivotEvents reshapes event aggregation rows. Each input row carries the
// bucket, event_name, dimension values and a metric cell named value.
// The event name only becomes a column axis when more than one event was
// requested; a single requested event collapses to one value column.
func PivotEvents(rows []map[string]any, intervalAlias string, dimensionAliases []string, events []string) *domain.ResultMatrix {
	withEventAxis := len(events) > 1

	if len(dimensionAliases) == 0 && !withEventAxis {
		return pivotSingleColumn(rows, intervalAlias)
	}

	cells := make(map[string]float64)
	var buckets []string
	var columns []domain.ColumnKey

	for _, row := range rows {
		bucket := stringCell(row[intervalAlias])

		key := make(domain.ColumnKey, 0, len(dimensionAliases)+1)
		for _, alias := range dimensionAliases {
			key = append(key, stringCell(row[alias]))
		}
		if withEventAxis {
			key = append(key, stringCell(row["event_name"]))
		}

		buckets = appendUnique(buckets, bucket)
		columns = appendUniqueKey(columns, key)
		cells[bucket+keySep+strings.Join(key, keySep)] = floatCell(row["value"])
	}

	return assemble(intervalAlias, buckets, columns, cells)
}

// PivotFunnel reshapes funnel rows. Each input row carries the bucket,
// dimension values and one count cell per step ordinal. Without dimensions
// the columns stay in step order; with dimensions the column key is the
// step ordinal followed by the dimension values, sorted ascending.
func PivotFunnel(rows []map[string]any, intervalAlias string, dimensionAliases []string, stepCount int) *domain.ResultMatrix {
	cells := make(map[string]float64)
	var buckets []string
	var columns []domain.ColumnKey

	if len(dimensionAliases) == 0 {
		for step := 1; step <= stepCount; step++ {
			columns = append(columns, domain.ColumnKey{strconv.Itoa(step)})
		}
		for _, row := range rows {
			bucket := stringCell(row[intervalAlias])
			buckets = appendUnique(buckets, bucket)
			for step := 1; step <= stepCount; step++ {
				label := strconv.Itoa(step)
				cells[bucket+keySep+label] = floatCell(row[label])
			}
		}
		slices.Sort(buckets)
		return fill(intervalAlias, buckets, columns, cells)
	}

	for _, row := range rows {
		bucket := stringCell(row[intervalAlias])
		buckets = appendUnique(buckets, bucket)

		dims := make([]string, 0, len(dimensionAliases))
		for _, alias := range dimensionAliases {
			dims = append(dims, stringCell(row[alias]))
		}

		for step := 1; step <= stepCount; step++ {
			label := strconv.Itoa(step)
			key := append(domain.ColumnKey{label}, dims...)
			columns = appendUniqueKey(columns, key)
			cells[bucket+keySep+strings.Join(key, keySep)] = floatCell(row[label])
		}
	}

	return assemble(intervalAlias, buckets, columns, cells)
}

// pivotSingleColumn handles the degenerate event shape: no dimensions, one
// requested event, a single value column indexed by bucket.
func pivotSingleColumn(rows []map[string]any, intervalAlias string) *domain.ResultMatrix {
	cells := make(map[string]float64)
	var buckets []string
	for _, row := range rows {
		bucket := stringCell(row[intervalAlias])
		buckets = appendUnique(buckets, bucket)
		cells[bucket+keySep+"value"] = floatCell(row["value"])
	}
	slices.Sort(buckets)

	columns := []domain.ColumnKey{}
	if len(buckets) > 0 {
		columns = append(columns, domain.ColumnKey{"value"})
	}
	return fill(intervalAlias, buckets, columns, cells)
}

// assemble sorts both axes and zero-fills the dense matrix.
func assemble(intervalAlias string, buckets []string, columns []domain.ColumnKey, cells map[string]float64) *domain.ResultMatrix {
	slices.Sort(buckets)
	slices.SortFunc(columns, func(a, b domain.ColumnKey) int {
		return slices.Compare(a, b)
	})
	return fill(intervalAlias, buckets, columns, cells)
}

func fill(intervalAlias string, buckets []string, columns []domain.ColumnKey, cells map[string]float64) *domain.ResultMatrix {
	values := make([][]float64, len(buckets))
	for i, bucket := range buckets {
		row := make([]float64, len(columns))
		for j, col := range columns {
			row[j] = cells[bucket+keySep+strings.Join(col, keySep)]
		}
		values[i] = row
	}
	return &domain.ResultMatrix{
		IndexName: intervalAlias,
		Index:     buckets,
		Columns:   columns,
		Values:    values,
	}
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}

func appendUniqueKey(list []domain.ColumnKey, key domain.ColumnKey) []domain.ColumnKey {
	for _, existing := range list {
		if slices.Equal(existing, key) {
			return list
		}
	}
	return append(list, key)
}
