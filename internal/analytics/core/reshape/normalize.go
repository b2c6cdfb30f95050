package reshape

import "fmt"

// canonicalLabels maps raw warehouse labels onto the casing the rest of
// the product presents. Applied to every string cell before pivoting.
var canonicalLabels = map[string]string{
	"IOS":     "iOS",
	"ANDROID": "Android",
}

// NormalizeLabels rewrites known label variants in place.
func NormalizeLabels(rows []map[string]any) {
	for _, row := range rows {
		for col, val := range row {
			if s, ok := val.(string); ok {
				if canonical, ok := canonicalLabels[s]; ok {
					row[col] = canonical
				}
			}
		}
	}
}

// stringCell renders a row cell as a column label. NULL dimensions become
// the empty string.
func stringCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// floatCell coerces a metric cell. Counts arrive as int64 from the
// executor, custom formulas may produce floats.
func floatCell(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int64:
		return float64(t)
	case int32:
		return float64(t)
	case int:
		return float64(t)
	default:
		return 0
	}
}
