// Package bigquery adapts the Google BigQuery client to the core's
// QueryExecutorPort.
package bigquery

import (
	"context"

	"cloud.google.com/go/bigquery"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"

	"analytics-query-service/internal/analytics/core/ports"
)

type Executor struct {
	client *bigquery.Client
}

func NewExecutor(client *bigquery.Client) *Executor {
	return &Executor{client: client}
}

// Query runs sql and materializes every row keyed by schema field name.
// Failures (auth, quota, syntax, transport) are returned untranslated.
func (e *Executor) Query(ctx context.Context, sql string) ([]ports.Row, error) {
	it, err := e.client.Query(sql).Read(ctx)
	if err != nil {
		log.WithError(err).Error("bigquery query failed")
		return nil, err
	}

	var rows []ports.Row
	for {
		var values []bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.WithError(err).Error("bigquery row iteration failed")
			return nil, err
		}

		row := make(ports.Row, len(it.Schema))
		for i, field := range it.Schema {
			if i < len(values) {
				row[field.Name] = values[i]
			}
		}
		rows = append(rows, row)
	}

	log.WithField("rows", len(rows)).Debug("bigquery query completed")
	return rows, nil
}
