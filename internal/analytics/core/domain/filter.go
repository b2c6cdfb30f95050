package domain

// Operator is a comparison operator usable in an EventFilter.
type Operator string

const (
	OpIn             Operator = "IN"
	OpNotIn          Operator = "NOT IN"
	OpEquals         Operator = "="
	OpNotEquals      Operator = "!="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// EventFilter restricts a query to events whose property matches the
// operator and values. Property is a dotted path; paths under the
// event_params or user_properties namespaces address the repeated
// key/value records of the export schema.
//
// IN and NOT IN require at least one value, all other operators exactly
// one.
type EventFilter struct {
	Property string
	Operator Operator
	Values   []string
}
