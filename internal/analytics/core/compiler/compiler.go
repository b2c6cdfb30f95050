// Package compiler turns analytics requests into BigQuery SQL text.
//
// Statements are assembled from typed string fragments rather than an AST:
// identical requests must produce byte-identical SQL, which the snapshot
// tests in this package pin down.
package compiler

import "strings"

const (
	defaultTimezone     = "UTC"
	defaultUserIDColumn = "user_pseudo_id"
)

// Compiler holds the read-only table configuration shared by every
// compiled statement. It is safe for concurrent use.
type Compiler struct {
	table     string // fully qualified, may end with '*' for sharded tables
	tz        string
	userIDCol string
}

// New returns a Compiler for the given fully qualified table identifier
// (project.dataset.table, with a trailing '*' for date-sharded tables).
// Empty tz and userIDCol fall back to UTC and user_pseudo_id.
func New(table, tz, userIDCol string) *Compiler {
	if tz == "" {
		tz = defaultTimezone
	}
	if userIDCol == "" {
		userIDCol = defaultUserIDColumn
	}
	return &Compiler{table: table, tz: tz, userIDCol: userIDCol}
}

// Table returns the configured table identifier.
func (c *Compiler) Table() string { return c.table }

// Timezone returns the configured bucketing timezone.
func (c *Compiler) Timezone() string { return c.tz }

func (c *Compiler) fromClause() string {
	return "`" + c.table + "`"
}

func (c *Compiler) isSharded() bool {
	return strings.HasSuffix(c.table, "*")
}
