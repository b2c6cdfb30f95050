package compiler

import "strings"

// escapeLiteral makes a raw string safe for single-quoted embedding.
func escapeLiteral(v string) string {
	return strings.ReplaceAll(v, "'", `\'`)
}

// FormatLiteral renders v as a single-quoted SQL string literal.
func FormatLiteral(v string) string {
	return "'" + escapeLiteral(v) + "'"
}

// FormatLiteralList renders values as a parenthesized literal list for use
// with IN style operators, e.g. ('USD', 'EUR').
func FormatLiteralList(values []string) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(FormatLiteral(v))
	}
	b.WriteByte(')')
	return b.String()
}
