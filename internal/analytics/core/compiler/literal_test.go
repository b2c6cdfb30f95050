package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"analytics-query-service/internal/analytics/core/compiler"
)

func TestFormatLiteral(t *testing.T) {
	assert.Equal(t, "'USD'", compiler.FormatLiteral("USD"))
	assert.Equal(t, "''", compiler.FormatLiteral(""))
	assert.Equal(t, `'O\'Brien'`, compiler.FormatLiteral("O'Brien"))
	assert.Equal(t, `'it\'s \'quoted\''`, compiler.FormatLiteral("it's 'quoted'"))
}

func TestFormatLiteralList(t *testing.T) {
	assert.Equal(t, "('USD', 'EUR')", compiler.FormatLiteralList([]string{"USD", "EUR"}))
	assert.Equal(t, "('purchase')", compiler.FormatLiteralList([]string{"purchase"}))
	assert.Equal(t, `('a', 'b\'c')`, compiler.FormatLiteralList([]string{"a", "b'c"}))
}
