package compiler

import (
	"fmt"

	"analytics-query-service/internal/analytics/core/domain"
)

// CompileDimensions turns dimension paths into aligned select expressions
// and output aliases. Nested paths become correlated subqueries extracting
// the keyed string value; flat paths select the column directly. The alias
// is always the bare key name, so two paths sharing a key collide and are
// rejected.
func CompileDimensions(paths []string) (selects, aliases []string, err error) {
	seen := make(map[string]string, len(paths))

	for _, raw := range paths {
		path := ResolvePath(rewriteLegacyAlias(raw))

		if prev, ok := seen[path.Key]; ok {
			return nil, nil, fmt.Errorf(
				"%w: dimensions %q and %q both alias to %q", domain.ErrInvalidArgument, prev, raw, path.Key)
		}
		seen[path.Key] = raw

		if path.Nested() {
			selects = append(selects, fmt.Sprintf(
				"(SELECT props.value.string_value FROM UNNEST(%s) props WHERE props.key = %s) AS %s",
				path.Prefix, FormatLiteral(path.Key), path.Key,
			))
		} else {
			selects = append(selects, fmt.Sprintf("%s AS %s", rewriteLegacyAlias(raw), path.Key))
		}
		aliases = append(aliases, path.Key)
	}

	return selects, aliases, nil
}

// rewriteLegacyAlias maps the historical bare "country" dimension onto its
// qualified geo path.
func rewriteLegacyAlias(path string) string {
	if path == "country" {
		return PropGeoCountry
	}
	return path
}
