package ports

import "context"

// Row is one result row keyed by output column name.
type Row = map[string]any

// QueryExecutorPort runs a single SQL statement against the warehouse and
// returns its rows. Implementations own transport, auth and cancellation;
// the core surfaces their failures unchanged.
type QueryExecutorPort interface {
	Query(ctx context.Context, sql string) ([]Row, error)
}
