package statview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/statview/schema"
	"github.com/hupe1980/statview/stats"
)

func singleFeatureView(t *testing.T, f stats.FeatureNameStatistics, byWeight bool, numExamples, weightedNumExamples float64) FeatureView {
	t.Helper()
	view := MustNewDatasetView(&stats.DatasetFeatureStatistics{
		NumExamples:         numExamples,
		WeightedNumExamples: weightedNumExamples,
		Features:            []stats.FeatureNameStatistics{f},
	}, byWeight)
	fv, ok := view.ByPath(f.FeaturePath())
	require.True(t, ok)
	return fv
}

func TestNameAndPath(t *testing.T) {
	fv := singleFeatureView(t, numFeature(&stats.CommonStatistics{}, "s", "x"), false, 0, 0)
	assert.Equal(t, "x", fv.Name())
	assert.True(t, fv.Path().Equal(schema.NewPath("s", "x")))

	// Flat records identified by name only.
	named := singleFeatureView(t, stats.FeatureNameStatistics{Name: "a", Type: stats.TypeInt}, false, 0, 0)
	assert.Equal(t, "a", named.Name())
	assert.True(t, named.Path().Equal(schema.NewPath("a")))
}

func TestFeatureTypeCollapse(t *testing.T) {
	tests := []struct {
		declared stats.Type
		physical schema.FeatureType
	}{
		{stats.TypeInt, schema.FeatureTypeInt},
		{stats.TypeFloat, schema.FeatureTypeFloat},
		{stats.TypeString, schema.FeatureTypeBytes},
		{stats.TypeBytes, schema.FeatureTypeBytes},
		{stats.TypeStruct, schema.FeatureTypeStruct},
	}

	for _, tt := range tests {
		t.Run(tt.declared.String(), func(t *testing.T) {
			fv := singleFeatureView(t, stats.FeatureNameStatistics{Name: "f", Type: tt.declared}, false, 0, 0)
			assert.Equal(t, tt.declared, fv.Type())
			assert.Equal(t, tt.physical, fv.FeatureType())
		})
	}
}

func TestNumPresentWeighted(t *testing.T) {
	f := numFeature(&stats.CommonStatistics{
		NumNonMissing:       8,
		WeightedCommonStats: &stats.WeightedCommonStatistics{NumNonMissing: 6.5},
	}, "a")

	assert.Equal(t, 8.0, singleFeatureView(t, f, false, 10, 7.5).NumPresent())
	assert.Equal(t, 6.5, singleFeatureView(t, f, true, 10, 7.5).NumPresent())
}

func TestWeightedFallbackToZero(t *testing.T) {
	// by_weight on a dataset with only unweighted statistics: accessors
	// fall back to defined zero defaults instead of failing.
	f := numFeature(&stats.CommonStatistics{NumNonMissing: 8, TotNumValues: 16}, "a")
	fv := singleFeatureView(t, f, true, 10, 0)

	assert.False(t, fv.WeightedStatisticsExist())
	assert.False(t, fv.View().WeightedStatisticsExist())
	assert.Equal(t, 0.0, fv.NumPresent())
	assert.Equal(t, 0.0, fv.TotalValueCountInExamples())
	assert.Equal(t, 0.0, fv.NumExamples())

	_, defined := fv.FractionPresent()
	assert.False(t, defined)
}

func TestMinNumValuesClamped(t *testing.T) {
	f := numFeature(&stats.CommonStatistics{MinNumValues: -3, MaxNumValues: 4}, "a")
	fv := singleFeatureView(t, f, false, 1, 0)

	assert.Equal(t, int64(0), fv.MinNumValues())
	assert.Equal(t, int64(4), fv.MaxNumValues())

	positive := numFeature(&stats.CommonStatistics{MinNumValues: 2, MaxNumValues: 4}, "a")
	assert.Equal(t, int64(2), singleFeatureView(t, positive, false, 1, 0).MinNumValues())
}

func TestFractionPresentZeroExamples(t *testing.T) {
	f := numFeature(&stats.CommonStatistics{NumNonMissing: 3}, "a")
	fv := singleFeatureView(t, f, false, 0, 0)

	fraction, defined := fv.FractionPresent()
	assert.False(t, defined)
	assert.Equal(t, 0.0, fraction)
}

func TestTotalValueCountInExamples(t *testing.T) {
	tests := []struct {
		name     string
		common   *stats.CommonStatistics
		byWeight bool
		expected float64
	}{
		{
			"UnweightedTotal",
			&stats.CommonStatistics{NumNonMissing: 8, TotNumValues: 24},
			false,
			24,
		},
		{
			"UnweightedFallbackToAvg",
			&stats.CommonStatistics{NumNonMissing: 8, AvgNumValues: 2.5},
			false,
			20,
		},
		{
			"Weighted",
			&stats.CommonStatistics{
				NumNonMissing:       8,
				TotNumValues:        24,
				WeightedCommonStats: &stats.WeightedCommonStatistics{TotNumValues: 18.5},
			},
			true,
			18.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := singleFeatureView(t, numFeature(tt.common, "a"), tt.byWeight, 10, 10)
			assert.Equal(t, tt.expected, fv.TotalValueCountInExamples())
		})
	}
}

func TestStringValuesWithCounts(t *testing.T) {
	ss := &stats.StringStatistics{
		CommonStats: &stats.CommonStatistics{NumNonMissing: 5},
		RankHistogram: &stats.RankHistogram{Buckets: []stats.RankBucket{
			{Label: "b", SampleCount: 2},
			{Label: "a", SampleCount: 3},
		}},
		WeightedStringStats: &stats.WeightedStringStatistics{
			RankHistogram: &stats.RankHistogram{Buckets: []stats.RankBucket{
				{Label: "a", SampleCount: 1.5},
			}},
		},
	}
	f := stringFeature(ss, "s")

	unweighted := singleFeatureView(t, f, false, 5, 5)
	assert.Equal(t, map[string]float64{"a": 3, "b": 2}, unweighted.StringValuesWithCounts())
	assert.Equal(t, []string{"a", "b"}, unweighted.StringValues())

	weighted := singleFeatureView(t, f, true, 5, 5)
	assert.Equal(t, map[string]float64{"a": 1.5}, weighted.StringValuesWithCounts())
	assert.Equal(t, []string{"a"}, weighted.StringValues())
}

func TestStringValuesAbsent(t *testing.T) {
	// Non-string features and string features without histograms yield
	// empty results, never errors.
	numeric := singleFeatureView(t, numFeature(&stats.CommonStatistics{}, "n"), false, 1, 0)
	assert.Empty(t, numeric.StringValuesWithCounts())
	assert.Empty(t, numeric.StringValues())

	bare := singleFeatureView(t, stringFeature(&stats.StringStatistics{}, "s"), false, 1, 0)
	assert.Empty(t, bare.StringValuesWithCounts())

	weightedOnly := singleFeatureView(t, stringFeature(&stats.StringStatistics{}, "s"), true, 1, 1)
	assert.Empty(t, weightedOnly.StringValuesWithCounts())
}

func TestHasInvalidUTF8Strings(t *testing.T) {
	withSentinel := &stats.StringStatistics{
		RankHistogram: &stats.RankHistogram{Buckets: []stats.RankBucket{
			{Label: "ok", SampleCount: 5},
			{Label: stats.InvalidUTF8Label, SampleCount: 1},
		}},
	}
	clean := &stats.StringStatistics{
		RankHistogram: &stats.RankHistogram{Buckets: []stats.RankBucket{
			{Label: "ok", SampleCount: 5},
		}},
	}

	assert.True(t, singleFeatureView(t, stringFeature(withSentinel, "s"), false, 1, 0).HasInvalidUTF8Strings())
	assert.False(t, singleFeatureView(t, stringFeature(clean, "s"), false, 1, 0).HasInvalidUTF8Strings())

	// Only string-typed features report invalid UTF-8.
	bytesFeature := stats.FeatureNameStatistics{
		PathSteps:   []string{"b"},
		Type:        stats.TypeBytes,
		StringStats: withSentinel,
	}
	assert.False(t, singleFeatureView(t, bytesFeature, false, 1, 0).HasInvalidUTF8Strings())
}

func TestNumStatsDefault(t *testing.T) {
	withStats := singleFeatureView(t, stats.FeatureNameStatistics{
		PathSteps: []string{"a"},
		Type:      stats.TypeFloat,
		NumStats:  &stats.NumericStatistics{Mean: 1.5, Max: 9},
	}, false, 1, 0)
	got := withStats.NumStats()
	assert.Equal(t, 1.5, got.Mean)
	assert.Equal(t, 9.0, got.Max)

	// Absent numeric statistics yield a zero value, not an error.
	without := singleFeatureView(t, stringFeature(&stats.StringStatistics{}, "s"), false, 1, 0)
	assert.Equal(t, stats.NumericStatistics{}, without.NumStats())
}

func TestCustomStatsCopied(t *testing.T) {
	f := stats.FeatureNameStatistics{
		PathSteps: []string{"a"},
		Type:      stats.TypeInt,
		CustomStats: []stats.CustomStatistic{
			{Name: "coverage", Num: 0.9},
			{Name: "coverage", Str: "dup names allowed"},
		},
	}
	fv := singleFeatureView(t, f, false, 1, 0)

	got := fv.CustomStats()
	require.Len(t, got, 2)
	assert.Equal(t, "coverage", got[0].Name)

	got[0].Name = "mutated"
	assert.Equal(t, "coverage", fv.CustomStats()[0].Name)
}

func TestNumMissingDerived(t *testing.T) {
	f := numFeature(&stats.CommonStatistics{
		NumNonMissing:       8,
		WeightedCommonStats: &stats.WeightedCommonStatistics{NumNonMissing: 6},
	}, "a")

	assert.Equal(t, 2.0, singleFeatureView(t, f, false, 10, 7.5).NumMissing())
	assert.Equal(t, 1.5, singleFeatureView(t, f, true, 10, 7.5).NumMissing())
}
