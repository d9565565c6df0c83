package schema

// FeatureType is the physical type of a feature as materialized in
// examples. It deliberately collapses the BYTES/STRING distinction kept
// by the statistics producer: both are physically byte strings.
type FeatureType uint8

const (
	FeatureTypeUnknown FeatureType = iota
	FeatureTypeBytes
	FeatureTypeInt
	FeatureTypeFloat
	FeatureTypeStruct
)

// String returns the string representation of the FeatureType.
func (t FeatureType) String() string {
	switch t {
	case FeatureTypeBytes:
		return "BYTES"
	case FeatureTypeInt:
		return "INT"
	case FeatureTypeFloat:
		return "FLOAT"
	case FeatureTypeStruct:
		return "STRUCT"
	default:
		return "UNKNOWN"
	}
}
