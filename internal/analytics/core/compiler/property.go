package compiler

import "strings"

// PropertyPath is a dotted property path split into its namespace prefix
// and final key. Prefix is empty for bare column names.
type PropertyPath struct {
	Prefix string
	Key    string
}

// Nested reports whether the path addresses a repeated key/value record
// column (event parameters or user properties) instead of a flat column.
func (p PropertyPath) Nested() bool {
	return p.Prefix == NamespaceEventParams || p.Prefix == NamespaceUserProperties
}

// The two namespaces stored as repeated records in the export schema.
const (
	NamespaceEventParams    = "event_params"
	NamespaceUserProperties = "user_properties"
)

// ResolvePath splits a dotted path into prefix and key. It is total: a
// path without dots resolves to an empty prefix and the path as key.
func ResolvePath(path string) PropertyPath {
	parts := strings.Split(path, ".")
	if len(parts) == 1 {
		return PropertyPath{Key: path}
	}
	return PropertyPath{Prefix: parts[0], Key: parts[len(parts)-1]}
}

// Well-known property paths of the export schema.
const (
	PropPlatform               = "platform"
	PropGeoCountry             = "geo.country"
	PropGeoRegion              = "geo.region"
	PropGeoCity                = "geo.city"
	PropDeviceCategory         = "device.category"
	PropDeviceMobileBrandName  = "device.mobile_brand_name"
	PropDeviceMobileModelName  = "device.mobile_model_name"
	PropDeviceMarketingName    = "device.mobile_marketing_name"
	PropDeviceLanguage         = "device.language"
	PropAppInfoVersion         = "app_info.version"
)

// EventParam returns the dotted path for a custom event parameter.
func EventParam(key string) string {
	return NamespaceEventParams + "." + key
}

// UserProperty returns the dotted path for a custom user property.
func UserProperty(key string) string {
	return NamespaceUserProperties + "." + key
}
