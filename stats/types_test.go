package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/statview/schema"
)

func TestFeaturePath(t *testing.T) {
	named := FeatureNameStatistics{Name: "a"}
	assert.True(t, named.FeaturePath().Equal(schema.NewPath("a")))

	nested := FeatureNameStatistics{PathSteps: []string{"s", "x"}}
	assert.True(t, nested.FeaturePath().Equal(schema.NewPath("s", "x")))

	// Explicit path steps win over the legacy name field.
	both := FeatureNameStatistics{Name: "legacy", PathSteps: []string{"s", "x"}}
	assert.True(t, both.FeaturePath().Equal(schema.NewPath("s", "x")))
}

func TestCommonStatsBranchSelection(t *testing.T) {
	numCommon := &CommonStatistics{NumNonMissing: 1}
	strCommon := &CommonStatistics{NumNonMissing: 2}
	bytesCommon := &CommonStatistics{NumNonMissing: 3}
	structCommon := &CommonStatistics{NumNonMissing: 4}

	tests := []struct {
		name     string
		feature  FeatureNameStatistics
		expected *CommonStatistics
	}{
		{"Numeric", FeatureNameStatistics{NumStats: &NumericStatistics{CommonStats: numCommon}}, numCommon},
		{"String", FeatureNameStatistics{StringStats: &StringStatistics{CommonStats: strCommon}}, strCommon},
		{"Bytes", FeatureNameStatistics{BytesStats: &BytesStatistics{CommonStats: bytesCommon}}, bytesCommon},
		{"Struct", FeatureNameStatistics{StructStats: &StructStatistics{CommonStats: structCommon}}, structCommon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.expected, tt.feature.CommonStats())
		})
	}

	empty := FeatureNameStatistics{}
	assert.Nil(t, empty.CommonStats())
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{TypeInt, "INT"},
		{TypeFloat, "FLOAT"},
		{TypeString, "STRING"},
		{TypeBytes, "BYTES"},
		{TypeStruct, "STRUCT"},
		{Type(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.typ.String())
	}
}
